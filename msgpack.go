package fraction

import (
	"fmt"
	"math/big"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Frac{}
	_ msgpack.CustomDecoder = (*Frac)(nil)
)

// EncodeMsgpack encodes f as a [numerator, denominator] array. Components
// that do not fit in an int64 are written as decimal text.
func (f Frac) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	for _, x := range []*big.Int{f.num(), f.den()} {
		var err error
		if x.IsInt64() {
			err = enc.EncodeInt(x.Int64())
		} else {
			err = enc.EncodeString(x.String())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack decodes a value written by EncodeMsgpack and normalizes it.
func (f *Frac) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("msgpack array of length %d: %w", n, ErrTypeMismatch)
	}

	var parts [2]*big.Int
	for i := range parts {
		v, err := dec.DecodeInterfaceLoose()
		if err != nil {
			return err
		}
		if parts[i], err = decodeInt(v); err != nil {
			return err
		}
	}

	frac, err := newFrac(parts[0], parts[1])
	if err != nil {
		return err
	}
	*f = frac
	return nil
}

func decodeInt(v any) (*big.Int, error) {
	switch v := v.(type) {
	case int64:
		return big.NewInt(v), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case string:
		x, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, fmt.Errorf("msgpack string %q: %w", v, ErrTypeMismatch)
		}
		return x, nil
	default:
		return nil, fmt.Errorf("msgpack %T: %w", v, ErrTypeMismatch)
	}
}
