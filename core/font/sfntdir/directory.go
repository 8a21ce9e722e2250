package sfntdir

import (
	"fmt"
	"sort"
)

// Tag is a 4-byte table identifier.
type Tag uint32

// MakeTag creates a Tag from 4 bytes, e.g.,
//
//	MakeTag([]byte("cmap"))
//
// If b is shorter it will be padded with zeros on the left, if it is longer it
// will be cut. b is never modified.
func MakeTag(b []byte) Tag {
	var t [4]byte
	if len(b) > 4 {
		b = b[:4]
	}
	copy(t[4-len(b):], b)
	return Tag(u32(t[:]))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// Flavors of sfnt fonts.
const (
	FlavorTrueType uint32 = 0x00010000
	FlavorCFF      uint32 = 0x4f54544f // OTTO
	FlavorApple    uint32 = 0x74727565 // true
)

// Record is an entry of the table directory.
type Record struct {
	Tag      Tag
	CheckSum uint32
	Offset   uint32
	Length   uint32
}

// Directory is the table directory of an sfnt font.
// It references the font's binary data, which must not be changed while the
// directory is in use.
type Directory struct {
	Flavor  uint32
	Records []Record // sorted by tag
	data    binarySegm
}

// Parse reads the table directory of an sfnt font.
func Parse(font []byte) (*Directory, error) {
	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	src := binarySegm(font)
	flavor, err := src.u32(0)
	if err != nil {
		return nil, errFontFormat("font header too short")
	}
	if !(flavor == FlavorCFF || flavor == FlavorTrueType || flavor == FlavorApple) {
		return nil, errFontFormat(fmt.Sprintf("font type not supported: %x", flavor))
	}
	n, _ := src.u16(4)
	if n == 0 {
		return nil, errFontFormat("font contains no tables")
	}
	tracer().Debugf("sfnt flavor = %x, %d tables", flavor, n)
	dir := &Directory{Flavor: flavor, data: src, Records: make([]Record, 0, n)}
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	buf, err := src.view(12, 16*int(n))
	if err != nil {
		return nil, errFontFormat("table record entries")
	}
	for b := buf; len(b) > 0; b = b[16:] {
		rec := Record{
			Tag:      MakeTag(b),
			CheckSum: u32(b[4:8]),
			Offset:   u32(b[8:12]),
			Length:   u32(b[12:16]),
		}
		if uint64(rec.Offset)+uint64(rec.Length) > uint64(len(font)) {
			return nil, errFontFormat(fmt.Sprintf("table %s exceeds font data", rec.Tag))
		}
		dir.Records = append(dir.Records, rec)
	}
	// Some fonts in the wild do not keep the records sorted, but the containers
	// we write require ascending order.
	sort.Slice(dir.Records, func(i, j int) bool {
		return dir.Records[i].Tag < dir.Records[j].Tag
	})
	for i := 1; i < len(dir.Records); i++ {
		if dir.Records[i].Tag == dir.Records[i-1].Tag {
			return nil, errFontFormat("duplicate table " + dir.Records[i].Tag.String())
		}
	}
	return dir, nil
}

// IsCFF is a predicate: does the font contain CFF outlines?
func (dir *Directory) IsCFF() bool {
	return dir.Flavor == FlavorCFF
}

// Table returns the bytes of the table with the given tag.
func (dir *Directory) Table(tag Tag) ([]byte, bool) {
	for _, rec := range dir.Records {
		if rec.Tag == tag {
			return dir.data[rec.Offset : rec.Offset+rec.Length], true
		}
	}
	return nil, false
}

// Size is the size in bytes of a well-formed sfnt file holding the tables
// of dir, with each table padded to 4 bytes.
func (dir *Directory) Size() int {
	size := 12 + 16*len(dir.Records)
	for _, rec := range dir.Records {
		size += Pad4(int(rec.Length))
	}
	return size
}

// Data returns the complete binary data of the font.
func (dir *Directory) Data() []byte {
	return dir.data
}
