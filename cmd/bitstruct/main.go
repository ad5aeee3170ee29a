// Command bitstruct is a thin CLI wrapper around the bitstruct package,
// for poking at a format string and a hex-encoded buffer from a shell.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-bitstruct/bitstruct"
)

func main() {
	var (
		format    = flag.String("format", "", "bitstruct format string, e.g. u8u8u16")
		mode      = flag.String("mode", "", "one of: pack, unpack, size, swap")
		data      = flag.String("data", "", "hex-encoded input buffer (unpack, swap)")
		values    = flag.String("values", "", "comma-separated integer values to pack")
		offset    = flag.Int("offset", 0, "bit offset (unpack)")
		truncated = flag.Bool("truncated", false, "allow truncated unpack")
		swapSizes = flag.String("sizes", "", "byteswap group sizes, e.g. 24")
	)
	flag.Parse()

	switch *mode {
	case "pack":
		runPack(*format, *values)
	case "unpack":
		runUnpack(*format, *data, *offset, *truncated)
	case "size":
		runSize(*format)
	case "swap":
		runSwap(*swapSizes, *data)
	default:
		log.Println("Error: mode must be one of pack, unpack, size, swap")
		os.Exit(1)
	}
}

func runPack(format, values string) {
	if format == "" {
		fail("format is required")
	}
	args := parseValues(values)
	buf, err := bitstruct.Pack(format, args...)
	if err != nil {
		fail(err.Error())
	}
	fmt.Println(hex.EncodeToString(buf))
}

func runUnpack(format, data string, offset int, truncated bool) {
	if format == "" {
		fail("format is required")
	}
	buf, err := hex.DecodeString(data)
	if err != nil {
		fail("invalid hex data: " + err.Error())
	}
	out, err := bitstruct.UnpackFrom(format, buf, offset, truncated)
	if err != nil {
		fail(err.Error())
	}
	fmt.Println(out)
}

func runSize(format string) {
	if format == "" {
		fail("format is required")
	}
	n, err := bitstruct.SizeInBits(format)
	if err != nil {
		fail(err.Error())
	}
	fmt.Println(n)
}

func runSwap(sizes, data string) {
	if sizes == "" {
		fail("sizes is required")
	}
	buf, err := hex.DecodeString(data)
	if err != nil {
		fail("invalid hex data: " + err.Error())
	}
	out, err := bitstruct.ByteSwap(sizes, buf)
	if err != nil {
		fail(err.Error())
	}
	fmt.Println(hex.EncodeToString(out))
}

// parseValues splits a comma-separated list of integers (decimal, or with a
// 0x/0o/0b prefix) and true/false literals into the []any pack wants. The CLI only supports integer and bool fields this
// way; text/raw/float values aren't reachable from this binding.
func parseValues(s string) []any {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]any, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		switch p {
		case "true":
			out = append(out, true)
			continue
		case "false":
			out = append(out, false)
			continue
		}
		n, err := strconv.ParseInt(p, 0, 64)
		if err != nil {
			fail(fmt.Sprintf("cannot parse value %q as integer or bool", p))
		}
		out = append(out, n)
	}
	return out
}

func fail(msg string) {
	log.Println("Error:", msg)
	os.Exit(1)
}
