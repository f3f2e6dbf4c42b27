// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Native message boxes from a running Ebitengine game: E/W/I pop severity
// boxes, Q pops a styled confirm-quit box with custom buttons. The dialogs
// block the game loop while open; that is how SDL message boxes work.
package main

import (
	"fmt"
	"image/color"
	"log"

	msgbox "github.com/YindSoft/sdl2-msgbox"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 640
	screenHeight = 360
)

var quitScheme = &msgbox.ColorScheme{
	Background:       msgbox.Color{R: 30, G: 30, B: 40},
	Text:             msgbox.Color{R: 230, G: 230, B: 230},
	ButtonBorder:     msgbox.Color{R: 90, G: 90, B: 120},
	ButtonBackground: msgbox.Color{R: 45, G: 45, B: 60},
	ButtonSelected:   msgbox.Color{R: 0, G: 120, B: 215},
}

type Game struct {
	counter int
	status  string
}

func (g *Game) Update() error {
	g.counter++

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.report("error box", msgbox.ShowSimple(msgbox.Error, "Error", "Something broke.", nil))
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.report("warning box", msgbox.ShowSimple(msgbox.Warning, "Warning", "Something looks off.", nil))
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		g.report("info box", msgbox.ShowSimple(msgbox.Information, "Info", fmt.Sprintf("Frame %d.", g.counter), nil))
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return g.confirmQuit()
	}
	return nil
}

func (g *Game) confirmQuit() error {
	buttons := []msgbox.Button{
		{ID: 1, Text: "Quit", Flags: msgbox.ReturnKeyDefault},
		{ID: 2, Text: "Keep playing", Flags: msgbox.EscapeKeyDefault},
	}
	clicked, err := msgbox.Show(msgbox.Warning, buttons, "Quit?", "Leave the game?", nil, quitScheme)
	if err != nil {
		g.report("quit box", err)
		return nil
	}
	if clicked != nil && clicked.ID == 1 {
		return ebiten.Termination
	}
	g.status = "staying"
	return nil
}

func (g *Game) report(what string, err error) {
	if err == nil {
		g.status = what + ": dismissed"
		return
	}
	log.Printf("%s: %v", what, err)
	g.status = what + ": " + err.Error()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"E: error box  W: warning box  I: info box  Q: confirm quit\n%s", g.status))
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	// Surface a missing SDL2 runtime before the window opens.
	if err := msgbox.Load(); err != nil {
		log.Fatalf("load SDL2: %v", err)
	}
	if v, err := msgbox.Version(); err == nil {
		log.Printf("SDL runtime %s", v)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("sdl2-msgbox - Ebitengine demo")

	if err := ebiten.RunGame(&Game{status: "ready"}); err != nil {
		log.Fatalf("run: %v", err)
	}
}
