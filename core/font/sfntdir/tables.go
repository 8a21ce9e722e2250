package sfntdir

// OS2 holds the fields of the 'OS/2' table needed for web font containers.
type OS2 struct {
	Version       uint16
	WeightClass   uint16
	FsType        uint16 // embedding licensing rights
	Panose        [10]byte
	UnicodeRange  [4]uint32
	FsSelection   uint16
	CodePageRange [2]uint32 // zero for version 0 tables
}

// Italic is a predicate: is bit 0 of fsSelection set?
func (os2 OS2) Italic() bool {
	return os2.FsSelection&0x0001 != 0
}

// OS2 reads the 'OS/2' table.
func (dir *Directory) OS2() (OS2, error) {
	os2 := OS2{}
	table, ok := dir.Table(T("OS/2"))
	if !ok {
		return os2, errFontFormat("missing required table OS/2")
	}
	b := binarySegm(table)
	// version 0 tables end after usWinDescent at offset 78
	if len(b) < 78 {
		return os2, errFontFormat("size of OS/2 table")
	}
	os2.Version = u16(b[0:])
	os2.WeightClass = u16(b[4:])
	os2.FsType = u16(b[8:])
	copy(os2.Panose[:], b[32:42])
	for i := 0; i < 4; i++ {
		os2.UnicodeRange[i] = u32(b[42+4*i:])
	}
	os2.FsSelection = u16(b[62:])
	if os2.Version >= 1 {
		var err error
		if os2.CodePageRange[0], err = b.u32(78); err != nil {
			return os2, errFontFormat("size of OS/2 table")
		}
		if os2.CodePageRange[1], err = b.u32(82); err != nil {
			return os2, errFontFormat("size of OS/2 table")
		}
	}
	return os2, nil
}

// ChecksumAdjustment reads field checkSumAdjustment of the 'head' table.
func (dir *Directory) ChecksumAdjustment() (uint32, error) {
	table, ok := dir.Table(T("head"))
	if !ok {
		return 0, errFontFormat("missing required table head")
	}
	if len(table) < 54 {
		return 0, errFontFormat("size of head table")
	}
	return u32(table[8:]), nil
}

// Version reads the major and minor version of the font from the
// fontRevision field of the 'head' table (a 16.16 fixed number).
func (dir *Directory) Version() (major, minor uint16, err error) {
	table, ok := dir.Table(T("head"))
	if !ok {
		return 0, 0, errFontFormat("missing required table head")
	}
	if len(table) < 54 {
		return 0, 0, errFontFormat("size of head table")
	}
	return u16(table[4:]), u16(table[6:]), nil
}
