// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package textkit

import "github.com/charlievieth/textkit/internal/bytealg"

var _lower = [256]byte{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, ' ', '!', '"', '#', '$', '%',
	'&', '\'', '(', ')', '*', '+', ',', '-', '.', '/', '0', '1', '2', '3', '4',
	'5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?', '@', 'a', 'b', 'c',
	'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r',
	's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '[', '\\', ']', '^', '_', '`', 'a',
	'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p',
	'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~', 127,
	128, 129, 130, 131, 132, 133, 134, 135, 136, 137, 138, 139, 140, 141, 142,
	143, 144, 145, 146, 147, 148, 149, 150, 151, 152, 153, 154, 155, 156, 157,
	158, 159, 160, 161, 162, 163, 164, 165, 166, 167, 168, 169, 170, 171, 172,
	173, 174, 175, 176, 177, 178, 179, 180, 181, 182, 183, 184, 185, 186, 187,
	188, 189, 190, 191, 192, 193, 194, 195, 196, 197, 198, 199, 200, 201, 202,
	203, 204, 205, 206, 207, 208, 209, 210, 211, 212, 213, 214, 215, 216, 217,
	218, 219, 220, 221, 222, 223, 224, 225, 226, 227, 228, 229, 230, 231, 232,
	233, 234, 235, 236, 237, 238, 239, 240, 241, 242, 243, 244, 245, 246, 247,
	248, 249, 250, 251, 252, 253, 254, 255,
}

// equalASCII tests whether s and t are equal ignoring ASCII case. Both must
// have the same length.
func equalASCII(s, t []byte) bool {
	t = t[:len(s)]
	for i := 0; i < len(s); i++ {
		if _lower[s[i]] != _lower[t[i]] {
			return false
		}
	}
	return true
}

func bruteForceIndexASCII(s, substr []byte) int {
	c0 := _lower[substr[0]]
	t := len(s) - len(substr) + 1
	for i := 0; i < t; i++ {
		if _lower[s[i]] != c0 {
			continue
		}
		if equalASCII(s[i+1:i+len(substr)], substr[1:]) {
			return i
		}
	}
	return -1
}

// indexFoldASCII is the narrow, ASCII folding specialization of the
// case-insensitive finder. With ASCII folding the first-unit gate is a
// lower case comparison, so IndexByte can skip over rejected positions.
func indexFoldASCII(s, substr []byte, offset int) int {
	n := len(substr)
	t := len(s) - n + 1
	if offset < 0 || offset >= t {
		return NotFound
	}
	if len(s)-offset <= bytealg.MaxBruteForce {
		if o := bruteForceIndexASCII(s[offset:], substr); o >= 0 {
			return o + offset
		}
		return NotFound
	}
	c0 := substr[0]
	l0 := _lower[c0]
	i := offset
	fails := 0
	for i < t {
		if _lower[s[i]] != l0 {
			// IndexByte is faster than comparing tails as long as we're
			// not getting lots of false positives.
			o := bytealg.IndexByte(s[i+1:t], c0)
			if o < 0 {
				return NotFound
			}
			i += o + 1
		}
		if equalASCII(s[i+1:i+n], substr[1:]) {
			return i
		}
		i++
		fails++
		if fails > bytealg.Cutover(i-offset) && i < t {
			if o := bruteForceIndexASCII(s[i:], substr); o >= 0 {
				return o + i
			}
			return NotFound
		}
	}
	return NotFound
}
