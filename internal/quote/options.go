package quote

import (
	"errors"
	"fmt"
)

// ErrUnknownOption is returned when a token does not name a member of an
// option set.
var ErrUnknownOption = errors.New("unknown option")

// Option describes one selectable member of an option set for display.
type Option struct {
	Value       string  `json:"value"`
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
	Multiplier  float64 `json:"multiplier"`
}

// WallHeight is the height of the wall (upper) cabinets.
type WallHeight string

const (
	WallHeight30     WallHeight = "h30"
	WallHeight36     WallHeight = "h36"
	WallHeight40     WallHeight = "h40"
	WallHeight42Plus WallHeight = "h42plus"
)

// Finish is the cabinet surface finish.
type Finish string

const (
	FinishPainted    Finish = "painted"
	FinishClearStain Finish = "clear-stain"
)

// DoorType is the door construction. It decides whether a panel type applies.
type DoorType string

const (
	DoorSolidSlab   DoorType = "solid-slab"
	DoorCenterPanel DoorType = "center-panel"
)

// PanelType is the center panel style. Only meaningful for center-panel doors.
type PanelType string

const (
	PanelFlat   PanelType = "flat"
	PanelRaised PanelType = "raised"
)

// DoorProfile is the edge profile of the door frame.
type DoorProfile string

const (
	ProfileShaker       DoorProfile = "shaker"
	ProfileProfile      DoorProfile = "profile"
	ProfileSkinnyShaker DoorProfile = "skinny-shaker"
)

// WallHeights lists the wall heights in display order.
var WallHeights = []WallHeight{WallHeight30, WallHeight36, WallHeight40, WallHeight42Plus}

// Finishes lists the finishes in display order.
var Finishes = []Finish{FinishPainted, FinishClearStain}

// DoorTypes lists the door types in display order.
var DoorTypes = []DoorType{DoorSolidSlab, DoorCenterPanel}

// PanelTypes lists the panel types in display order.
var PanelTypes = []PanelType{PanelFlat, PanelRaised}

// DoorProfiles lists the door profiles in display order.
var DoorProfiles = []DoorProfile{ProfileShaker, ProfileProfile, ProfileSkinnyShaker}

// Valid reports whether h is a declared wall height.
func (h WallHeight) Valid() bool {
	switch h {
	case WallHeight30, WallHeight36, WallHeight40, WallHeight42Plus:
		return true
	}
	return false
}

// Valid reports whether f is a declared finish.
func (f Finish) Valid() bool {
	switch f {
	case FinishPainted, FinishClearStain:
		return true
	}
	return false
}

// Valid reports whether d is a declared door type.
func (d DoorType) Valid() bool {
	switch d {
	case DoorSolidSlab, DoorCenterPanel:
		return true
	}
	return false
}

// Valid reports whether p is a declared panel type.
func (p PanelType) Valid() bool {
	switch p {
	case PanelFlat, PanelRaised:
		return true
	}
	return false
}

// Valid reports whether p is a declared door profile.
func (p DoorProfile) Valid() bool {
	switch p {
	case ProfileShaker, ProfileProfile, ProfileSkinnyShaker:
		return true
	}
	return false
}

// Label returns the human-readable name of the wall height.
func (h WallHeight) Label() string {
	switch h {
	case WallHeight30:
		return "30 inches"
	case WallHeight36:
		return "36 inches"
	case WallHeight40:
		return "40 inches"
	case WallHeight42Plus:
		return "42+ inches"
	}
	return string(h)
}

// Label returns the human-readable name of the finish.
func (f Finish) Label() string {
	switch f {
	case FinishPainted:
		return "Painted Finish"
	case FinishClearStain:
		return "Clear/Stain Finish"
	}
	return string(f)
}

// Label returns the human-readable name of the door type.
func (d DoorType) Label() string {
	switch d {
	case DoorSolidSlab:
		return "Solid Slab"
	case DoorCenterPanel:
		return "Center Panel"
	}
	return string(d)
}

// Label returns the human-readable name of the panel type.
func (p PanelType) Label() string {
	switch p {
	case PanelFlat:
		return "Flat Panel"
	case PanelRaised:
		return "Raised Panel"
	}
	return string(p)
}

// Label returns the human-readable name of the door profile.
func (p DoorProfile) Label() string {
	switch p {
	case ProfileShaker:
		return "Shaker Style"
	case ProfileProfile:
		return "Profile"
	case ProfileSkinnyShaker:
		return "Skinny Shaker"
	}
	return string(p)
}

// ParseWallHeight parses a wall height token such as "h36".
func ParseWallHeight(s string) (WallHeight, error) {
	h := WallHeight(s)
	if !h.Valid() {
		return "", fmt.Errorf("wall cabinet height %q: %w", s, ErrUnknownOption)
	}
	return h, nil
}

// ParseFinish parses a finish token such as "painted".
func ParseFinish(s string) (Finish, error) {
	f := Finish(s)
	if !f.Valid() {
		return "", fmt.Errorf("cabinet finish %q: %w", s, ErrUnknownOption)
	}
	return f, nil
}

// ParseDoorType parses a door type token such as "center-panel".
func ParseDoorType(s string) (DoorType, error) {
	d := DoorType(s)
	if !d.Valid() {
		return "", fmt.Errorf("door type %q: %w", s, ErrUnknownOption)
	}
	return d, nil
}

// ParsePanelType parses a panel type token such as "raised".
func ParsePanelType(s string) (PanelType, error) {
	p := PanelType(s)
	if !p.Valid() {
		return "", fmt.Errorf("panel type %q: %w", s, ErrUnknownOption)
	}
	return p, nil
}

// ParseDoorProfile parses a door profile token such as "skinny-shaker".
func ParseDoorProfile(s string) (DoorProfile, error) {
	p := DoorProfile(s)
	if !p.Valid() {
		return "", fmt.Errorf("door profile %q: %w", s, ErrUnknownOption)
	}
	return p, nil
}

// Text encoding validates on decode so YAML and JSON input files can never
// carry an undeclared member into Inputs.

func (h WallHeight) MarshalText() ([]byte, error) { return []byte(h), nil }

func (h *WallHeight) UnmarshalText(b []byte) error {
	v, err := ParseWallHeight(string(b))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

func (f Finish) MarshalText() ([]byte, error) { return []byte(f), nil }

func (f *Finish) UnmarshalText(b []byte) error {
	v, err := ParseFinish(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (d DoorType) MarshalText() ([]byte, error) { return []byte(d), nil }

func (d *DoorType) UnmarshalText(b []byte) error {
	v, err := ParseDoorType(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (p PanelType) MarshalText() ([]byte, error) { return []byte(p), nil }

func (p *PanelType) UnmarshalText(b []byte) error {
	v, err := ParsePanelType(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p DoorProfile) MarshalText() ([]byte, error) { return []byte(p), nil }

func (p *DoorProfile) UnmarshalText(b []byte) error {
	v, err := ParseDoorProfile(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// WallHeightOptions returns the wall heights with their display metadata.
func WallHeightOptions() []Option {
	desc := map[WallHeight]string{
		WallHeight30:     "Standard height wall cabinets",
		WallHeight36:     "Taller cabinets, more storage",
		WallHeight40:     "Even more storage space",
		WallHeight42Plus: "Maximum height cabinets",
	}
	opts := make([]Option, 0, len(WallHeights))
	for _, h := range WallHeights {
		opts = append(opts, Option{Value: string(h), Label: h.Label(), Description: desc[h], Multiplier: HeightMultiplier(h)})
	}
	return opts
}

// FinishOptions returns the finishes with their display metadata.
func FinishOptions() []Option {
	desc := map[Finish]string{
		FinishPainted:    "Smooth, solid color finish - popular and versatile",
		FinishClearStain: "Natural wood grain visible - classic and timeless",
	}
	opts := make([]Option, 0, len(Finishes))
	for _, f := range Finishes {
		opts = append(opts, Option{Value: string(f), Label: f.Label(), Description: desc[f], Multiplier: FinishMultiplier(f)})
	}
	return opts
}

// DoorTypeOptions returns the door types with their display metadata.
func DoorTypeOptions() []Option {
	desc := map[DoorType]string{
		DoorSolidSlab:   "Flat, seamless door with no frame or panel",
		DoorCenterPanel: "Traditional door with a frame and center panel",
	}
	opts := make([]Option, 0, len(DoorTypes))
	for _, d := range DoorTypes {
		opts = append(opts, Option{Value: string(d), Label: d.Label(), Description: desc[d], Multiplier: DoorTypeMultiplier(d)})
	}
	return opts
}

// PanelTypeOptions returns the panel types with the multiplier each carries
// on a center-panel door.
func PanelTypeOptions() []Option {
	desc := map[PanelType]string{
		PanelFlat:   "Panel sits flush with the frame - clean, simple look",
		PanelRaised: "Panel is raised above the frame - traditional detail",
	}
	opts := make([]Option, 0, len(PanelTypes))
	for _, p := range PanelTypes {
		opts = append(opts, Option{Value: string(p), Label: p.Label(), Description: desc[p], Multiplier: PanelTypeMultiplier(DoorCenterPanel, p)})
	}
	return opts
}

// DoorProfileOptions returns the door profiles with their display metadata.
func DoorProfileOptions() []Option {
	desc := map[DoorProfile]string{
		ProfileShaker:       "Clean, simple profile - the most popular choice",
		ProfileProfile:      "Decorative edge profile - adds elegant detail",
		ProfileSkinnyShaker: "Narrow frame Shaker - modern, sleek appearance",
	}
	opts := make([]Option, 0, len(DoorProfiles))
	for _, p := range DoorProfiles {
		opts = append(opts, Option{Value: string(p), Label: p.Label(), Description: desc[p], Multiplier: ProfileMultiplier(p)})
	}
	return opts
}
