package byteswap

import "errors"

// ErrBuffer covers a sizes string that runs off the end of data, and a
// size digit outside {1, 2, 4, 8}.
var ErrBuffer = errors.New("byteswap: buffer error")
