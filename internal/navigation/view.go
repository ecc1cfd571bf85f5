// Package navigation holds the in-memory view state of the client.
//
// A View is one of Home, Practice, Video, SelfCheck, Game and Stats. Leaving a
// view runs its exit hook so flows that hold resources are stopped.
package navigation

import (
	"fmt"

	"github.com/nursingskill/backend/internal/models"
)

// View is the active view of the client.
// The set of variants is closed: only this package can implement View.
type View interface {
	// Name returns the wire name of the view
	Name() string
	isView()
}

// Home is the skill overview
type Home struct{}

// Practice is the step walker of a skill
type Practice struct{}

// Video is the recording view
type Video struct{}

// SelfCheck is the self-check form
type SelfCheck struct{}

// Game is the mini-game view
type Game struct{}

// Stats is the dashboard
type Stats struct{}

func (Home) Name() string      { return "home" }
func (Practice) Name() string  { return "practice" }
func (Video) Name() string     { return "video" }
func (SelfCheck) Name() string { return "self_check" }
func (Game) Name() string      { return "game" }
func (Stats) Name() string     { return "stats" }

func (Home) isView()      {}
func (Practice) isView()  {}
func (Video) isView()     {}
func (SelfCheck) isView() {}
func (Game) isView()      {}
func (Stats) isView()     {}

// Views returns every view in menu order
func Views() []View {
	return []View{Home{}, Practice{}, Video{}, SelfCheck{}, Game{}, Stats{}}
}

// Parse returns the view with the given wire name
func Parse(name string) (View, error) {
	for _, v := range Views() {
		if v.Name() == name {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", models.ErrInvalidView, name)
}
