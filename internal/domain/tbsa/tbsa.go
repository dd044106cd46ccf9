// Package tbsa estimates burned total body surface area from selected body
// regions using a simplified adult rule of nines.
package tbsa

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownRegion is returned for a region id that is not in the table.
var ErrUnknownRegion = errors.New("unknown region")

// Region is one selectable body area and its share of total surface area.
type Region struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

var regions = []Region{
	{ID: "head_ant", Name: "Head (anterior)", Percent: 4.5},
	{ID: "torso_ant", Name: "Torso (anterior)", Percent: 18.0},
	{ID: "r_arm_ant", Name: "Right arm (anterior)", Percent: 4.5},
	{ID: "l_arm_ant", Name: "Left arm (anterior)", Percent: 4.5},
	{ID: "r_leg_ant", Name: "Right leg (anterior)", Percent: 9.0},
	{ID: "l_leg_ant", Name: "Left leg (anterior)", Percent: 9.0},
	{ID: "perineum", Name: "Perineum", Percent: 1.0},
	{ID: "head_post", Name: "Head (posterior)", Percent: 4.5},
	{ID: "torso_post", Name: "Torso (posterior)", Percent: 18.0},
	{ID: "r_arm_post", Name: "Right arm (posterior)", Percent: 4.5},
	{ID: "l_arm_post", Name: "Left arm (posterior)", Percent: 4.5},
	{ID: "r_leg_post", Name: "Right leg (posterior)", Percent: 9.0},
	{ID: "l_leg_post", Name: "Left leg (posterior)", Percent: 9.0},
}

// Regions returns the region table in display order.
func Regions() []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

// Estimate is the summed surface area of a region selection.
type Estimate struct {
	Selected []string `json:"selected"`
	Percent  float64  `json:"tbsa"`
}

// Compute sums the selected regions, ignoring repeats, and rounds to one
// decimal place. Region ids are matched case-insensitively.
func Compute(selected []string) (Estimate, error) {
	byID := make(map[string]Region, len(regions))
	for _, r := range regions {
		byID[r.ID] = r
	}

	est := Estimate{Selected: []string{}}
	seen := make(map[string]bool, len(selected))
	var total float64
	for _, raw := range selected {
		id := strings.ToLower(strings.TrimSpace(raw))
		if id == "" || seen[id] {
			continue
		}
		r, ok := byID[id]
		if !ok {
			return Estimate{}, fmt.Errorf("%w %q", ErrUnknownRegion, raw)
		}
		seen[id] = true
		est.Selected = append(est.Selected, id)
		total += r.Percent
	}
	est.Percent = math.Round(total*10) / 10
	return est, nil
}
