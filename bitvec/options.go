package bitvec

import "github.com/hupe1980/bitspan/order"

type options struct {
	order    order.Order
	capacity uint64
	codec    Codec
}

// Option configures Vector construction.
type Option func(*options)

// WithOrder sets the bit ordering policy. If nil is passed, order.Lsb0 is
// used.
func WithOrder(o order.Order) Option {
	return func(opts *options) {
		if o == nil {
			o = order.Lsb0
		}
		opts.order = o
	}
}

// WithCapacity pre-allocates backing storage for at least the given number
// of bits.
func WithCapacity(bits uint64) Option {
	return func(opts *options) {
		opts.capacity = bits
	}
}

// WithCodec selects the snapshot compression codec used by WriteTo.
// ReadFrom always honors the codec recorded in the snapshot itself.
func WithCodec(c Codec) Option {
	return func(opts *options) {
		opts.codec = c
	}
}
