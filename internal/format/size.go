package format

import "strconv"

// Magnitude is an order of magnitude on the byte scale.
type Magnitude int

const (
	Bytes Magnitude = iota
	Kilobytes
	Megabytes
	Gigabytes
	Terabytes
)

var sizeSuffixes = [...]string{"B", "k", "M", "G", "T"}

func (m Magnitude) Suffix() string {
	if m < Bytes || m > Terabytes {
		return "?"
	}
	return sizeSuffixes[m]
}

// Size scales size (expressed in units of mag) down by 1024 until it fits,
// returning a bright number span followed by a dim unit span. Values in
// [1024, 10240) are shown with one decimal at the next magnitude. Scaling
// stops at terabytes whatever the value.
func Size(size uint64, mag Magnitude) []Span {
	if mag < Bytes {
		mag = Bytes
	}
	for {
		if mag >= Terabytes || size < 1024 {
			return []Span{
				Bright(strconv.FormatUint(size, 10)),
				Dim(mag.Suffix()),
			}
		}
		if size < 10*1024 {
			whole := size >> 10
			tenth := (size & 1023) / 103
			return []Span{
				Bright(strconv.FormatUint(whole, 10) + "." + strconv.FormatUint(tenth, 10)),
				Dim((mag + 1).Suffix()),
			}
		}
		size >>= 10
		mag++
	}
}
