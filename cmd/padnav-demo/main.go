package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"padnav/focus"
	"padnav/input"
	"padnav/widget"
)

const (
	screenW = 640
	screenH = 480
)

type demo struct {
	session *focus.Session
	driver  *input.Driver
	theme   *widget.Theme

	buttons []*widget.Button
	field   *widget.TextField
	list    *widget.List

	status string
	quit   bool
}

func newDemo(cfg focus.Config, remoteURL string) *demo {
	d := &demo{
		session: focus.NewSession(cfg),
		theme:   widget.DefaultTheme(),
		status:  "ready",
	}

	pad := &input.Gamepad{}
	d.driver = input.NewDriver(cfg)
	d.driver.Gamepad = pad
	d.driver.OnBack = func() { d.quit = true }
	d.session.SetHaptics(pad)
	d.session.OnFocusChanged(func(old, new string) {
		log.Printf("focus: %q -> %q", old, new)
	})

	if remoteURL != "" {
		if r, err := input.DialRemote(remoteURL, nil); err == nil {
			d.driver.Remote = r
		}
		// A failed dial is already logged; the demo runs without it.
	}

	// 3x3 menu grid.
	labels := []string{
		"Play", "Army", "Map",
		"Shop", "Social", "Guild",
		"Options", "Credits", "Quit",
	}
	for i, label := range labels {
		col, row := i%3, i/3
		x := 40 + col*140
		y := 60 + row*70
		label := label
		btn := widget.NewButton(fmt.Sprintf("menu-%d", i), x, y, 120, 48, label, d.theme, func() {
			d.status = "activated: " + label
		})
		if label == "Quit" {
			btn.OnPress = func() { d.quit = true }
		}
		btn.Attach(d.session)
		d.buttons = append(d.buttons, btn)
	}

	d.field = widget.NewTextField("name", 40, 290, 260, 28, "player name", d.theme)
	d.field.Attach(d.session)

	d.list = widget.NewList("servers", 320, 290, 260, 120, []string{
		"us-east", "us-west", "eu-central", "eu-west",
		"ap-south", "ap-northeast", "sa-east", "af-south",
	}, d.theme)
	d.list.OnSelect = func(_ int, item string) {
		d.status = "server: " + item
	}
	d.list.Attach(d.session)

	return d
}

func (d *demo) Update() error {
	if d.quit {
		return ebiten.Termination
	}

	d.driver.Update(d.session)
	d.field.Update()

	// Pointer input still works alongside the focus system.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		for _, btn := range d.buttons {
			if btn.Contains(mx, my) {
				d.session.SetFocus(btn.ID)
				d.session.Activate()
			}
		}
	}
	return nil
}

func (d *demo) Draw(screen *ebiten.Image) {
	screen.Fill(d.theme.Background)

	text.Draw(screen, "padnav demo", basicfont.Face7x13, 40, 30, d.theme.TextPrimary)

	for _, btn := range d.buttons {
		btn.Draw(screen)
	}
	d.field.Draw(screen)
	d.list.Draw(screen)

	pad := "no gamepad"
	if d.session.DeviceConnected() {
		pad = "gamepad connected"
	}
	text.Draw(screen, pad, basicfont.Face7x13, 40, screenH-40, d.theme.TextMuted)
	text.Draw(screen, d.status, basicfont.Face7x13, 40, screenH-20, d.theme.TextPrimary)
	text.Draw(screen, "focused: "+d.session.FocusedID(), basicfont.Face7x13, 320, screenH-20, d.theme.TextMuted)
}

func (d *demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	remote := flag.String("remote", "", "websocket URL of a remote input feed")
	sequential := flag.Bool("sequential", false, "use sequential (reading-order) navigation")
	flag.Parse()

	cfg := focus.LoadConfig()
	if *sequential {
		cfg.Mode = focus.ModeSequential
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("padnav demo")
	if err := ebiten.RunGame(newDemo(cfg, *remote)); err != nil {
		log.Fatal(err)
	}
}
