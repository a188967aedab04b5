package store

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Array payloads are fixed-width little-endian blobs: float64 for sample data,
// one byte per artifact code.

func encodeFloat64s(values []float64) []byte {
	buf := make([]byte, len(values)*8)
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

func decodeFloat64s(payload []byte, n int) ([]float64, error) {
	if len(payload) != n*8 {
		return nil, fmt.Errorf("payload is %d bytes, want %d", len(payload), n*8)
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[i*8:]))
	}
	return values, nil
}

func encodeInt8s(values []int8) []byte {
	buf := make([]byte, len(values))
	for i, v := range values {
		buf[i] = byte(v)
	}
	return buf
}

func decodeInt8s(payload []byte, n int) ([]int8, error) {
	if len(payload) != n {
		return nil, fmt.Errorf("payload is %d bytes, want %d", len(payload), n)
	}
	values := make([]int8, n)
	for i, b := range payload {
		values[i] = int8(b)
	}
	return values, nil
}

func encodeInt64s(values []int64) []byte {
	buf := make([]byte, len(values)*8)
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(v))
	}
	return buf
}

func decodeInt64s(payload []byte, n int) ([]int64, error) {
	if len(payload) != n*8 {
		return nil, fmt.Errorf("payload is %d bytes, want %d", len(payload), n*8)
	}
	values := make([]int64, n)
	for i := range values {
		values[i] = int64(binary.LittleEndian.Uint64(payload[i*8:]))
	}
	return values, nil
}
