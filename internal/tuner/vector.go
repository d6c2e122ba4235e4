package tuner

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

type Number interface {
	float32 | int32
}

// Vector is a fixed length parameter vector.
// Its binary form is 4 little-endian bytes per element with no header.
type Vector[T Number] []T

func (v Vector[T]) Clone() Vector[T] {
	return append(Vector[T](nil), v...)
}

func (v Vector[T]) Add(other Vector[T]) Vector[T] {
	mustSameLen(len(v), len(other))
	var result = make(Vector[T], len(v))
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

func (v Vector[T]) Sub(other Vector[T]) Vector[T] {
	mustSameLen(len(v), len(other))
	var result = make(Vector[T], len(v))
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

func (v Vector[T]) Scale(k T) Vector[T] {
	var result = make(Vector[T], len(v))
	for i := range v {
		result[i] = k * v[i]
	}
	return result
}

// DivScalar divides scalar by every element of v.
func DivScalar[T Number](scalar T, v Vector[T]) Vector[T] {
	var result = make(Vector[T], len(v))
	for i := range v {
		result[i] = scalar / v[i]
	}
	return result
}

// Round projects v to the nearest integers. Float values beyond the int32
// range saturate.
func Round(v Vector[float32]) Vector[int32] {
	var result = make(Vector[int32], len(v))
	for i, x := range v {
		var r = math.Round(float64(x))
		switch {
		case r > math.MaxInt32:
			result[i] = math.MaxInt32
		case r < math.MinInt32:
			result[i] = math.MinInt32
		default:
			result[i] = int32(r)
		}
	}
	return result
}

func ToFloat(v Vector[int32]) Vector[float32] {
	var result = make(Vector[float32], len(v))
	for i, x := range v {
		result[i] = float32(x)
	}
	return result
}

func (v Vector[T]) MarshalBinary() ([]byte, error) {
	var buf = bytes.NewBuffer(make([]byte, 0, 4*len(v)))
	if err := binary.Write(buf, binary.LittleEndian, []T(v)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Vector[T]) UnmarshalBinary(data []byte) error {
	if len(data)%4 != 0 {
		return fmt.Errorf("parameter vector: %v bytes is not a multiple of 4", len(data))
	}
	var result = make([]T, len(data)/4)
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, result); err != nil {
		return err
	}
	*v = result
	return nil
}

func ReadVectorFile[T Number](path string) (Vector[T], error) {
	var data, err = os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v Vector[T]
	if err := v.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return v, nil
}

func (v Vector[T]) WriteFile(path string) error {
	var data, err = v.MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func mustSameLen(a, b int) {
	if a != b {
		panic(fmt.Sprintf("parameter vector length mismatch: %v != %v", a, b))
	}
}
