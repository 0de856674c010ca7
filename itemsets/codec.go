package itemsets

import (
	"github.com/fxamacker/cbor/v2"
)

// Codec encodes mining results as deterministic CBOR.
type Codec struct {
	encMode cbor.EncMode
	decMode cbor.DecMode
}

func NewCodec() (Codec, error) {
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	decMode, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{encMode: encMode, decMode: decMode}, nil
}

// MarshalResult encodes the reported itemsets of r. The trie snapshot a
// result may carry is not encoded.
func (c Codec) MarshalResult(r Result) ([]byte, error) {
	return c.encMode.Marshal(r)
}

func (c Codec) UnmarshalResult(data []byte) (Result, error) {
	var r Result
	if err := c.decMode.Unmarshal(data, &r); err != nil {
		return Result{}, err
	}
	return r, nil
}
