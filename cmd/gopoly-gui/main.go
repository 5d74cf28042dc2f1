package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gopoly/internal/config"
	"github.com/philipparndt/gopoly/internal/editor"
	"github.com/philipparndt/gopoly/internal/logging"
	"github.com/philipparndt/gopoly/pkg/geometry"
	"github.com/philipparndt/gopoly/pkg/viewer"
	"github.com/philipparndt/gopoly/version"
	"github.com/spf13/cobra"
)

const iconSize = 64

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:          "gopoly-gui",
	Short:        "Regular polygon editor (fyne front-end)",
	Args:         cobra.NoArgs,
	Version:      version.GetFullVersion(),
	SilenceUsage: true,
	RunE:         run,
}

type App struct {
	window  fyne.Window
	canvas  *viewer.EditorCanvas
	status  *widget.Label
	palette []geometry.Template
	buttons []*widget.Button
}

func main() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Settings file (default is gopoly/gopoly.toml in the user config directory)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if _, err := logging.Setup(cmd.ErrOrStderr(), logLevel); err != nil {
		return err
	}

	cfg, path := config.Resolve(configPath)
	style, err := cfg.Style.EditorStyle()
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow("gopoly")

	appInstance := &App{
		window:  w,
		palette: editor.Palette(cfg.Shape.DefaultRadius),
		status:  widget.NewLabel(editor.MessageChooseShape),
	}
	appInstance.canvas = viewer.NewEditorCanvas(appInstance.status.SetText)
	appInstance.canvas.Editor().SetStyle(style)
	appInstance.buildUI(a)

	if path != "" {
		fw, err := config.WatchStyle(path, func(style editor.Style) {
			// The watcher runs on its own goroutine
			fyne.Do(func() { appInstance.applyStyle(style) })
		})
		if err != nil {
			logging.Logger().Warn("style hot reload disabled", "error", err)
		} else {
			defer fw.Close()
		}
	}

	w.Canvas().SetOnTypedKey(appInstance.canvas.HandleKey)
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	logging.Logger().Info("editor started", "backend", "fyne")
	w.ShowAndRun()
	return nil
}

func (a *App) buildUI(fyneApp fyne.App) {
	ed := a.canvas.Editor()

	paletteBox := container.NewVBox()
	for _, t := range a.palette {
		btn := widget.NewButton(t.Name, func() {
			if err := ed.SelectTemplate(t); err != nil {
				logging.Logger().Error("palette entry rejected", "template", t.Name, "error", err)
			}
		})
		a.buttons = append(a.buttons, btn)
		paletteBox.Add(btn)
	}
	a.refreshIcons(ed.Style())

	deleteButton := widget.NewButton("Delete", func() {
		_ = ed.Delete()
	})
	exitButton := widget.NewButton("Exit", func() {
		fyneApp.Quit()
	})

	controls := container.NewHBox(
		a.status,
		layout.NewSpacer(),
		deleteButton,
		exitButton,
	)

	content := container.NewBorder(
		nil,        // top
		controls,   // bottom
		paletteBox, // left
		nil,        // right
		a.canvas,   // center
	)
	a.window.SetContent(content)
}

// applyStyle updates the canvas and the palette icons (must run on the UI thread)
func (a *App) applyStyle(style editor.Style) {
	a.canvas.Editor().SetStyle(style)
	a.refreshIcons(style)
}

func (a *App) refreshIcons(style editor.Style) {
	for i, t := range a.palette {
		res, err := viewer.IconResource(t, iconSize, style)
		if err != nil {
			logging.Logger().Warn("palette icon not rendered", "template", t.Name, "error", err)
			continue
		}
		a.buttons[i].SetIcon(res)
	}
}
