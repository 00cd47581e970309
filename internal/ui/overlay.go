package ui

import (
	"math/rand"

	"go.uber.org/zap"

	"mindnest/internal/ui/widget"
)

// TaskPool is the behavioral-activation prompt pool; severe check-ins draw a
// random task from it.
var TaskPool = []string{
	"Tidy your desk for 5 minutes",
	"Step outside for a 10 minute walk",
	"Send a message to a friend",
	"Listen to a song you've never heard",
	"Try a new recipe",
	"Do something creative — draw, write, build",
	"Practice 5 minutes of mindful breathing",
	"Reach out to a friend first",
	"Volunteer a little time for a cause you care about",
	"Join a group that shares a hobby of yours",
	"Visit a local museum or park",
	"Watch a film or a show with a friend",
	"Jog or walk briskly for 15 minutes",
	"Spend a moment in nature",
	"Try a sport you haven't played",
	"Ride a bike or go skating",
	"Do some gentle stretching or yoga",
	"Clear out one drawer or shelf",
	"Make your bed first thing tomorrow",
	"Take a long, warm shower",
}

// TaskOverlayController manages the full-screen prompt shown over any
// state. At most one prompt is displayed; a newer Show overwrites the text
// and keeps the overlay visible. It never touches the primary state.
type TaskOverlayController struct {
	log  *zap.Logger
	vis  *VisibilityController
	text *widget.Text
	rng  *rand.Rand
}

// NewTaskOverlayController wires the controller to the overlay panel's
// prompt widget.
func NewTaskOverlayController(vis *VisibilityController, prompt *widget.Text, log *zap.Logger) *TaskOverlayController {
	if log == nil {
		log = zap.NewNop()
	}
	return &TaskOverlayController{log: log, vis: vis, text: prompt}
}

// SetRand overrides the random source (tests).
func (c *TaskOverlayController) SetRand(r *rand.Rand) { c.rng = r }

// Show sets the prompt text and reveals the overlay. Depth-1 queue: a newer
// call overwrites the current text.
func (c *TaskOverlayController) Show(text string) {
	if c.text == nil {
		c.log.Error("task overlay prompt widget unset; show ignored")
		return
	}
	c.text.SetText(text)
	c.vis.ShowOverlay()
	c.log.Debug("task overlay shown", zap.String("text", text))
}

// ShowRandom shows a random task from the pool.
func (c *TaskOverlayController) ShowRandom() {
	i := 0
	if c.rng != nil {
		i = c.rng.Intn(len(TaskPool))
	} else {
		i = rand.Intn(len(TaskPool))
	}
	c.Show(TaskPool[i])
}

// Dismiss hides the overlay; whatever primary panel was visible underneath
// is untouched.
func (c *TaskOverlayController) Dismiss() {
	c.vis.HideOverlay()
}

// Visible reports whether the overlay is showing.
func (c *TaskOverlayController) Visible() bool { return c.vis.OverlayVisible() }

// Text returns the current prompt text.
func (c *TaskOverlayController) Text() string {
	if c.text == nil {
		return ""
	}
	return c.text.Text()
}
