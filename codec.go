package binmap

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = (*BinMap[string, any])(nil)
	_ msgpack.CustomDecoder = (*BinMap[string, any])(nil)
)

// EncodeMsgpack writes the map as an array of [key, value] pairs in key
// order.
func (b *BinMap[K, V]) EncodeMsgpack(encoder *msgpack.Encoder) error {
	if err := encoder.EncodeArrayLen(b.Size()); err != nil {
		return err
	}

	entries := b.Entries()
	for entries.MoveNext() {
		e := entries.GetCurrent()
		if err := encoder.EncodeArrayLen(2); err != nil {
			return err
		}
		if err := encoder.Encode(e.Key); err != nil {
			return err
		}
		if err := encoder.Encode(e.Value); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack adds the pairs written by EncodeMsgpack to b. Keys decode
// through b's ordering like any other Set.
func (b *BinMap[K, V]) DecodeMsgpack(decoder *msgpack.Decoder) error {
	n, err := decoder.DecodeArrayLen()
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		pairLen, err := decoder.DecodeArrayLen()
		if err != nil {
			return err
		}
		if pairLen != 2 {
			return errors.Errorf("error parsing entry %d: expected a pair, got %d items", i, pairLen)
		}

		var (
			key   K
			value V
		)
		if err := decoder.Decode(&key); err != nil {
			return err
		}
		if err := decoder.Decode(&value); err != nil {
			return err
		}

		if err := b.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}
