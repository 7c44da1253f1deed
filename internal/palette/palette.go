// Package palette assigns colors to logcat tags and process ids.
//
// Tags get colors from a small least-recently-used palette so that the tags
// active right now look different from each other. Process ids are hashed
// into the same palette, in its current order.
package palette

import (
	"github.com/charliek/colorcat/internal/domain"
	"github.com/samber/lo"
)

// Size is the number of colors in the rotating palette
const Size = 6

// DefaultRecent is the initial palette order, least recently used first
var DefaultRecent = [Size]domain.Color{
	domain.Green,
	domain.Yellow,
	domain.Blue,
	domain.Magenta,
	domain.Cyan,
	domain.Black,
}

// DefaultKnownTags are tags with a color before any line is seen
var DefaultKnownTags = map[string]domain.Color{
	"dalvikvm":        domain.Blue,
	"Process":         domain.Blue,
	"ActivityManager": domain.Cyan,
	"ActivityThread":  domain.Cyan,
}

// Allocator owns the tag color table and the recently used queue.
// It is not safe for concurrent use.
type Allocator struct {
	tags   map[string]domain.Color
	recent []domain.Color
}

// NewAllocator creates an allocator seeded with DefaultKnownTags and known.
// Entries in known override the defaults.
func NewAllocator(known map[string]domain.Color) *Allocator {
	a := &Allocator{
		tags:   make(map[string]domain.Color, len(DefaultKnownTags)+len(known)),
		recent: append([]domain.Color(nil), DefaultRecent[:]...),
	}
	for tag, c := range DefaultKnownTags {
		a.tags[tag] = c
	}
	for tag, c := range known {
		a.tags[tag] = c
	}
	return a
}

// TagColor returns the color of tag, assigning the least recently used color
// if the tag is new. A tag keeps its color for the life of the allocator.
// The color is marked as most recently used.
func (a *Allocator) TagColor(tag string) domain.Color {
	color, ok := a.tags[tag]
	if !ok {
		color = a.recent[0]
		a.tags[tag] = color
	}
	a.touch(color)
	return color
}

// PidColor returns the palette slot at pid mod Size in the current order.
// The result changes as TagColor reorders the palette.
func (a *Allocator) PidColor(pid string) domain.Color {
	return a.recent[mod(pid, Size)]
}

// Recent returns a copy of the palette, least recently used first
func (a *Allocator) Recent() []domain.Color {
	return append([]domain.Color(nil), a.recent...)
}

// touch moves color to the back of the queue. Seeded or configured tag
// colors outside the palette (red, white) leave the queue untouched.
func (a *Allocator) touch(color domain.Color) {
	i := lo.IndexOf(a.recent, color)
	if i < 0 {
		return
	}
	copy(a.recent[i:], a.recent[i+1:])
	a.recent[len(a.recent)-1] = color
}

// mod computes the decimal value of digits modulo m without overflowing.
// Non-digit input maps to 0.
func mod(digits string, m int) int {
	r := 0
	for i := 0; i < len(digits); i++ {
		d := digits[i]
		if d < '0' || d > '9' {
			return 0
		}
		r = (r*10 + int(d-'0')) % m
	}
	return r
}
