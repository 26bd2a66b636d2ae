package odds

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Denominator is the N in "1 in N".
type Denominator uint32

const (
	P2   Denominator = 2
	P3   Denominator = 3
	P4   Denominator = 4
	P5   Denominator = 5
	P6   Denominator = 6
	P8   Denominator = 8
	P10  Denominator = 10
	P12  Denominator = 12
	P16  Denominator = 16
	P20  Denominator = 20
	P25  Denominator = 25
	P30  Denominator = 30
	P50  Denominator = 50
	P60  Denominator = 60
	P100 Denominator = 100
	P128 Denominator = 128
	P256 Denominator = 256
)

var (
	ErrInvalidDenominator = errors.New("invalid denominator")

	Presets = map[string]Denominator{
		"p2":   P2,
		"p3":   P3,
		"p4":   P4,
		"p5":   P5,
		"p6":   P6,
		"p8":   P8,
		"p10":  P10,
		"p12":  P12,
		"p16":  P16,
		"p20":  P20,
		"p25":  P25,
		"p30":  P30,
		"p50":  P50,
		"p60":  P60,
		"p100": P100,
		"p128": P128,
		"p256": P256,
	}
)

func (d Denominator) String() string {
	return fmt.Sprintf("1/%d", uint32(d))
}

// Probability is informational only; rolls never go through floating point.
func (d Denominator) Probability() float64 {
	if d <= 1 {
		return 1
	}
	return 1 / float64(d)
}

// ParseDenominator accepts a preset name ("p100"), a fraction ("1/100") or a
// bare number ("100"). Zero is rejected here even though OneIn accepts it.
func ParseDenominator(s string) (Denominator, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := Presets[s]; ok {
		return d, nil
	}
	num := s
	if strings.HasPrefix(s, "1/") {
		num = s[2:]
	} else if strings.HasPrefix(s, "p") {
		num = s[1:]
	}
	n, err := strconv.ParseUint(num, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDenominator, s)
	}
	return Denominator(n), nil
}

// PresetNames returns the preset names ordered by denominator.
func PresetNames() []string {
	names := maps.Keys(Presets)
	sort.Slice(names, func(i, j int) bool {
		return Presets[names[i]] < Presets[names[j]]
	})
	return names
}
