package sourcemap

import "strings"

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// encodeVLQ implements the base64-VLQ encoding the source map v3 spec uses
// for each "mappings" segment field: the sign occupies the low bit, the
// magnitude the remaining bits, emitted 5 bits at a time least-significant
// group first with a continuation bit on every group but the last.
func encodeVLQ(value int) string {
	var vlq int
	if value < 0 {
		vlq = (-value << 1) | 1
	} else {
		vlq = value << 1
	}

	var b strings.Builder
	for {
		digit := vlq & 0x1f
		vlq >>= 5
		if vlq > 0 {
			digit |= 0x20
		}
		b.WriteByte(base64Chars[digit])
		if vlq == 0 {
			break
		}
	}
	return b.String()
}
