package numtext

// digits holds the zero-padded 5-character decimal representation of every value in
// [0, 100000), so Int2PChar-style formatting can memcpy a slice instead of computing
// digits one at a time.
var digits [100000 * 5]byte

// powers10 and negPowers10 hold 10^i and 10^-i for i in [0, powersSize), used both by the
// float scanner's exponent handling and by fixed-point precision conversion.
const powersSize = 15

var (
	powers10    [powersSize]uint64
	negPowers10 [powersSize]float64
)

func init() {
	for i := 0; i < 100000; i++ {
		dig := i
		digits[i*5+4] = byte('0' + dig%10)
		dig /= 10
		digits[i*5+3] = byte('0' + dig%10)
		dig /= 10
		digits[i*5+2] = byte('0' + dig%10)
		dig /= 10
		digits[i*5+1] = byte('0' + dig%10)
		dig /= 10
		digits[i*5+0] = byte('0' + dig)
	}

	powers10[0] = 1
	negPowers10[0] = 1.0
	for i := 1; i < powersSize; i++ {
		powers10[i] = 10 * powers10[i-1]
		negPowers10[i] = 0.1 * negPowers10[i-1]
	}
}
