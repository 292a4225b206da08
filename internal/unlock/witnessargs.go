package unlock

import (
	"encoding/binary"
	"fmt"
)

// WitnessArgs is the chain's canonical {lock, input_type, output_type}
// witness record. Each field is optional bytes; nil means absent.
type WitnessArgs struct {
	Lock       []byte
	InputType  []byte
	OutputType []byte
}

// Serialize encodes w in the chain's canonical molecule table format:
// a u32 total size, one u32 start-offset per field, then the fields'
// bodies back to back. Each present field's body is itself a molecule
// "dynvec of byte" (u32 length + raw bytes); an absent field has a
// zero-length body.
func (w *WitnessArgs) Serialize() []byte {
	fields := [][]byte{w.Lock, w.InputType, w.OutputType}

	fieldBytes := make([][]byte, len(fields))
	for i, f := range fields {
		if f == nil {
			fieldBytes[i] = nil
			continue
		}
		b := make([]byte, 4+len(f))
		binary.LittleEndian.PutUint32(b, uint32(len(f)))
		copy(b[4:], f)
		fieldBytes[i] = b
	}

	headerLen := 4 + 4*len(fields)
	bodyLen := 0
	for _, b := range fieldBytes {
		bodyLen += len(b)
	}
	total := headerLen + bodyLen

	out := make([]byte, total)
	binary.LittleEndian.PutUint32(out[0:4], uint32(total))

	offset := headerLen
	for i, b := range fieldBytes {
		binary.LittleEndian.PutUint32(out[4+4*i:8+4*i], uint32(offset))
		copy(out[offset:], b)
		offset += len(b)
	}
	return out
}

// ParseWitnessArgs decodes the molecule table format Serialize
// produces. Empty input is not valid WitnessArgs; callers treat an
// empty witness as the zero value before calling this.
func ParseWitnessArgs(data []byte) (*WitnessArgs, error) {
	const fieldCount = 3
	headerLen := 4 + 4*fieldCount
	if len(data) < headerLen {
		return nil, fmt.Errorf("witness args too short: %d bytes", len(data))
	}
	total := binary.LittleEndian.Uint32(data[0:4])
	if int(total) != len(data) {
		return nil, fmt.Errorf("witness args total size mismatch: header says %d, got %d bytes", total, len(data))
	}

	offsets := make([]int, fieldCount)
	for i := 0; i < fieldCount; i++ {
		offsets[i] = int(binary.LittleEndian.Uint32(data[4+4*i : 8+4*i]))
	}
	for i := 0; i < fieldCount; i++ {
		if offsets[i] < headerLen || offsets[i] > len(data) {
			return nil, fmt.Errorf("witness args field %d offset %d out of range", i, offsets[i])
		}
		if i > 0 && offsets[i] < offsets[i-1] {
			return nil, fmt.Errorf("witness args field offsets not ascending")
		}
	}

	fields := make([][]byte, fieldCount)
	for i := 0; i < fieldCount; i++ {
		start := offsets[i]
		end := len(data)
		if i+1 < fieldCount {
			end = offsets[i+1]
		}
		fieldLen := end - start
		if fieldLen == 0 {
			fields[i] = nil
			continue
		}
		if fieldLen < 4 {
			return nil, fmt.Errorf("witness args field %d too short: %d bytes", i, fieldLen)
		}
		body := data[start:end]
		innerLen := binary.LittleEndian.Uint32(body[0:4])
		if int(innerLen) != fieldLen-4 {
			return nil, fmt.Errorf("witness args field %d length mismatch", i)
		}
		fields[i] = body[4:]
	}

	return &WitnessArgs{
		Lock:       fields[0],
		InputType:  fields[1],
		OutputType: fields[2],
	}, nil
}
