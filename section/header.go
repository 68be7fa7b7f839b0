package section

import (
	"github.com/arloliu/hybf/encoding"
	"github.com/arloliu/hybf/errs"
	"github.com/arloliu/hybf/format"
)

// Header is the fixed 8-byte block at the start of every container:
//
//	offset 0: magic        = "HYBF"
//	offset 4: version      = 0x01
//	offset 5: format_type  = 0x01 | 0x02
//	offset 6: column_count = u16 big-endian
type Header struct {
	Format      format.FormatType
	ColumnCount uint16
}

// ParseHeader validates and parses the first HeaderSize bytes of data.
//
// It fails with errs.ErrTruncated, errs.ErrInvalidMagic,
// errs.ErrUnsupportedVersion or errs.ErrUnknownFormat and never reads past
// byte 8, which makes it the whole of format sniffing.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrTruncated
	}

	if string(data[0:4]) != Magic {
		return Header{}, errs.ErrInvalidMagic
	}

	if data[4] != Version {
		return Header{}, errs.ErrUnsupportedVersion
	}

	ft := format.FormatType(data[5])
	if ft != format.FormatMinimal && ft != format.FormatCompressed {
		return Header{}, errs.ErrUnknownFormat
	}

	return Header{
		Format:      ft,
		ColumnCount: uint16(data[6])<<8 | uint16(data[7]),
	}, nil
}

// Bytes serialises the header into a fresh HeaderSize-byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, 0, HeaderSize)
	b = append(b, Magic...)
	b = append(b, Version, byte(h.Format))
	b = append(b, byte(h.ColumnCount>>8), byte(h.ColumnCount))

	return b
}

// ReadHeader consumes the header through a Reader.
func ReadHeader(r *encoding.Reader) (Header, error) {
	data, err := r.ReadBytes(HeaderSize)
	if err != nil {
		return Header{}, err
	}

	return ParseHeader(data)
}
