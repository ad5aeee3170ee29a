package bitstruct

import "github.com/go-bitstruct/bitstruct/lib/byteswap"

func byteSwap(sizes string, data []byte) ([]byte, error) {
	return byteswap.Apply(sizes, data)
}
