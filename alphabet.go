// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icfplang

import "math/big"

// alphabet is the fixed 94-character sequence used for literal bodies
// and integer digits: lowercase letters, uppercase letters, digits,
// ASCII punctuation, a space, and a newline, in that order. Wire byte c
// in 33..126 denotes alphabet[c-33].
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`|~ \n"

const wireBase = 94
const wireStart = 33 // '!'

// decodeChar maps a wire byte (33..126) to its alphabet character.
func decodeChar(c byte) (byte, error) {
	if c < wireStart || int(c)-wireStart >= len(alphabet) {
		return 0, &Error{Kind: ErrInvalidCharacter, Byte: c}
	}
	return alphabet[int(c)-wireStart], nil
}

// encodeChar maps an alphabet character to its wire byte.
func encodeChar(c byte) (byte, error) {
	i := indexOf(alphabet, c)
	if i < 0 {
		return 0, &Error{Kind: ErrInvalidCharacter, Byte: c}
	}
	return byte(i + wireStart), nil
}

func indexOf(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// DecodeInt interprets body as base-94 MSB-first digits over wire bytes
// 33..126 and returns the nonnegative integer it denotes. An empty body
// decodes to zero.
func DecodeInt(body string) (*big.Int, error) {
	n := new(big.Int)
	base := big.NewInt(wireBase)
	digit := new(big.Int)
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < wireStart || c > 126 {
			return nil, &Error{Kind: ErrInvalidCharacter, Byte: c}
		}
		digit.SetInt64(int64(c - wireStart))
		n.Mul(n, base)
		n.Add(n, digit)
	}
	return n, nil
}

// EncodeInt produces the shortest MSB-first base-94 wire body for a
// nonnegative n. n == 0 encodes to the empty body.
func EncodeInt(n *big.Int) string {
	if n.Sign() == 0 {
		return ""
	}
	v := new(big.Int).Set(n)
	base := big.NewInt(wireBase)
	digit := new(big.Int)
	var digits []byte
	for v.Sign() > 0 {
		v.QuoRem(v, base, digit)
		digits = append(digits, byte(digit.Int64())+wireStart)
	}
	// digits were accumulated least-significant first; reverse in place.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// DecodeString interprets body as a sequence of wire bytes and returns
// the alphabet-character string it denotes.
func DecodeString(body string) (string, error) {
	out := make([]byte, len(body))
	for i := 0; i < len(body); i++ {
		c, err := decodeChar(body[i])
		if err != nil {
			return "", err
		}
		out[i] = c
	}
	return string(out), nil
}

// EncodeString is the inverse of DecodeString: it maps an
// alphabet-character string back to its wire-byte form.
func EncodeString(s string) (string, error) {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c, err := encodeChar(s[i])
		if err != nil {
			return "", err
		}
		out[i] = c
	}
	return string(out), nil
}

// stringToBigInt treats s's alphabet-character indices as base-94
// digits, most significant first, per the StrToInt primitive.
func stringToBigInt(s string) (*big.Int, error) {
	n := new(big.Int)
	base := big.NewInt(wireBase)
	digit := new(big.Int)
	for i := 0; i < len(s); i++ {
		idx := indexOf(alphabet, s[i])
		if idx < 0 {
			return nil, &Error{Kind: ErrInvalidCharacter, Byte: s[i]}
		}
		digit.SetInt64(int64(idx))
		n.Mul(n, base)
		n.Add(n, digit)
	}
	return n, nil
}

// bigIntToString is the inverse of stringToBigInt for a nonnegative n,
// per the IntToStr primitive.
func bigIntToString(n *big.Int) (string, error) {
	if n.Sign() < 0 {
		return "", &Error{Kind: ErrNegativeIntToStr}
	}
	if n.Sign() == 0 {
		return "", nil
	}
	v := new(big.Int).Set(n)
	base := big.NewInt(wireBase)
	digit := new(big.Int)
	var out []byte
	for v.Sign() > 0 {
		v.QuoRem(v, base, digit)
		out = append(out, alphabet[digit.Int64()])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}
