// ABOUTME: Graphical pulse window built on ebiten
// ABOUTME: Mirrors the run state as a pulsing square over a status bar
package visual

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/gammastim/gammastim-go/internal/session"
	"github.com/gammastim/gammastim-go/internal/version"
	"github.com/gammastim/gammastim-go/pkg/stimulus"
)

// Window dimensions in logical pixels.
const (
	Width  = 400
	Height = 200
)

// Pulse square geometry: centered, grown while a pulse is sounding.
const (
	pulseCenterX  = Width / 2
	pulseCenterY  = 80
	pulseHalfBase = 30
	pulseHalfGrow = 15
)

var (
	backgroundColor = color.RGBA{30, 30, 35, 255}
	statusBarColor  = color.RGBA{40, 40, 40, 255}

	pulseActiveColor = color.RGBA{0, 255, 100, 255}
	pulseIdleColor   = color.RGBA{0, 100, 50, 255}
	continuousColor  = color.RGBA{50, 150, 255, 255}
	pausedColor      = color.RGBA{80, 80, 80, 255}

	playColor  = color.RGBA{0, 200, 0, 255}
	pauseColor = color.RGBA{200, 50, 50, 255}

	testModeColor   = color.RGBA{50, 100, 200, 255}
	pulsedModeColor = color.RGBA{0, 150, 100, 255}

	timeBarColor     = color.RGBA{60, 60, 60, 255}
	timeBarFillColor = color.RGBA{100, 180, 100, 255}

	hintBoxColor  = color.RGBA{60, 60, 60, 255}
	hintTextColor = color.RGBA{190, 190, 190, 255}
)

// Driver is the slice of the playback driver the window needs.
type Driver interface {
	Position() uint64
	Playing() bool
	ContinuousTone() bool
	TogglePlaying() bool
	ToggleContinuousTone() bool
}

// Window is the ebiten game mirroring the stimulus state. All state it
// renders lives in the driver and session; the window itself is
// stateless between frames.
type Window struct {
	driver Driver
	sess   *session.Session
}

// New creates the pulse window over the given driver and session.
func New(driver Driver, sess *session.Session) *Window {
	return &Window{
		driver: driver,
		sess:   sess,
	}
}

// Run opens the window and blocks until the operator closes it. It must
// run on the main goroutine; the audio engine keeps streaming on its
// own thread regardless of what happens here.
func (w *Window) Run() error {
	ebiten.SetWindowSize(Width, Height)
	ebiten.SetWindowTitle(title(0))
	return ebiten.RunGame(w)
}

// Update handles input and refreshes the elapsed display in the title.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.driver.TogglePlaying()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		w.driver.ToggleContinuousTone()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	ebiten.SetWindowTitle(title(w.sess.Elapsed()))
	return nil
}

// Draw renders the pulse indicator, status bar and key hints.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	playing := w.driver.Playing()
	continuous := w.driver.ContinuousTone()
	active := pulseActive(w.driver.Position())

	// The square's size follows the stream clock even while paused;
	// only its color reflects the flags.
	half := float64(pulseHalf(active))
	c := indicatorColor(playing, continuous, active)
	ebitenutil.DrawRect(screen, pulseCenterX-half, pulseCenterY-half, 2*half, 2*half, c)

	w.drawKeyHints(screen)
	w.drawStatusBar(screen, playing, continuous)
}

// Layout fixes the logical resolution regardless of window scaling.
func (w *Window) Layout(_, _ int) (int, int) {
	return Width, Height
}

// drawStatusBar renders the bottom bar: play/pause glyph, mode box and
// the session time bar.
func (w *Window) drawStatusBar(screen *ebiten.Image, playing, continuous bool) {
	ebitenutil.DrawRect(screen, 0, Height-50, Width, 50, statusBarColor)

	if playing {
		ebitenutil.DrawRect(screen, 20, Height-35, 20, 20, playColor)
	} else {
		ebitenutil.DrawRect(screen, 20, Height-35, 8, 20, pauseColor)
		ebitenutil.DrawRect(screen, 32, Height-35, 8, 20, pauseColor)
	}

	if continuous {
		ebitenutil.DrawRect(screen, 60, Height-35, 60, 20, testModeColor)
	} else {
		ebitenutil.DrawRect(screen, 60, Height-35, 60, 20, pulsedModeColor)
	}

	ebitenutil.DrawRect(screen, 140, Height-35, Width-160, 20, timeBarColor)
	if fill := timeBarWidth(w.sess.Progress(), Width-160); fill > 0 {
		ebitenutil.DrawRect(screen, 140, Height-35, float64(fill), 20, timeBarFillColor)
	}
}

// drawKeyHints renders the labelled key boxes above the status bar.
func (w *Window) drawKeyHints(screen *ebiten.Image) {
	hints := []struct {
		x     float64
		label string
	}{
		{20, "SPACE Pause"},
		{110, "T Test"},
		{200, "Q Quit"},
	}

	for _, h := range hints {
		ebitenutil.DrawRect(screen, h.x, 110, 80, 25, hintBoxColor)
		text.Draw(screen, h.label, basicfont.Face7x13, int(h.x)+6, 127, hintTextColor)
	}
}

// pulseActive reports whether the position falls inside the 1ms tone
// window of its pulse interval.
func pulseActive(pos uint64) bool {
	return pos%stimulus.SamplesPerInterval < stimulus.SamplesPerTone
}

// pulseHalf returns the square's half size, grown while a pulse sounds.
func pulseHalf(active bool) int {
	if active {
		return pulseHalfBase + pulseHalfGrow
	}
	return pulseHalfBase
}

// indicatorColor picks the square color: gray while paused, blue for
// the continuous calibration tone, bright green inside a pulse and dim
// green between pulses.
func indicatorColor(playing, continuous, active bool) color.RGBA {
	switch {
	case !playing:
		return pausedColor
	case continuous:
		return continuousColor
	case active:
		return pulseActiveColor
	default:
		return pulseIdleColor
	}
}

// timeBarWidth converts session progress into a fill width, clamped to
// the bar.
func timeBarWidth(progress float64, total int) int {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return total
	}
	return int(progress * float64(total))
}

// title formats the window title with the elapsed display and key help.
func title(elapsed time.Duration) string {
	return fmt.Sprintf("%s 40Hz | %s | SPACE:Pause  T:Test  Q:Quit",
		version.Product, session.FormatElapsed(elapsed))
}
