package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/qnkhuat/tetterm/pkg/game"
	"github.com/qnkhuat/tetterm/pkg/gui"
	"github.com/qnkhuat/tetterm/pkg/mino"
	"github.com/qnkhuat/tetterm/pkg/sound"
	"github.com/qnkhuat/tetterm/pkg/util"
)

type config struct {
	logPath    string
	debug      bool
	theme      string
	themesPath string
	sound      bool
	bag        bool
	seed       int64
	matrix     string
	name       string
}

func parseFlags(args []string) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("tetterm", flag.ContinueOnError)
	fs.StringVar(&cfg.logPath, "log", "./tetterm.log", "path to log file")
	fs.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	fs.StringVar(&cfg.theme, "theme", gui.ThemeBasic.Name, "color theme (basic, mono or one from -themes)")
	fs.StringVar(&cfg.themesPath, "themes", "", "path to a JSON file of extra themes")
	fs.BoolVar(&cfg.sound, "sound", false, "play sound effects")
	fs.BoolVar(&cfg.bag, "bag", false, "deal pieces from a shuffled bag of seven")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed (0 picks one)")
	fs.StringVar(&cfg.matrix, "matrix", "", "pre-fill the board with cells x,y,x,y,...")
	fs.StringVar(&cfg.name, "name", "", "player name")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	if cfg.name == "" {
		cfg.name = petname.Generate(2, "-")
	}

	return cfg, nil
}

func newSource(cfg config) mino.Source {
	if cfg.bag {
		return mino.NewBag(cfg.seed)
	}

	return mino.NewRandom(cfg.seed)
}

func loadTheme(cfg config) (gui.Theme, error) {
	var extra []gui.ThemeHex
	if cfg.themesPath != "" {
		themes, err := gui.LoadThemes(cfg.themesPath)
		if err != nil {
			return gui.Theme{}, err
		}
		extra = themes
	}

	return gui.LookupTheme(cfg.theme, extra)
}

func newGame(cfg config) (*game.Game, error) {
	var opts []game.Option
	if cfg.matrix != "" {
		b, err := mino.ParseCells(cfg.matrix)
		if err != nil {
			return nil, fmt.Errorf("parse -matrix: %w", err)
		}
		opts = append(opts, game.WithBoard(b))
	}

	return game.New(newSource(cfg), opts...), nil
}

func fatal(format string, a ...interface{}) {
	color.New(color.FgRed).Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func summary(g *game.Game, name string) {
	title := color.New(color.FgCyan, color.Bold)
	title.Printf("%s\n", name)

	if g.GameOver() {
		color.Red("Game over")
	}
	fmt.Printf("Score: %s\n", color.YellowString("%d", g.Score()))
	fmt.Printf("Lines: %d\n", g.Lines())
	fmt.Printf("Pieces: %d\n", g.Pieces())
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fatal("failed to start tetterm: non-interactive terminals are not supported")
	}

	logFile, err := util.InitLog(cfg.logPath, "CLIENT: ", cfg.debug)
	if err != nil {
		fatal("failed to start tetterm: %s", err)
	}
	defer logFile.Close()

	theme, err := loadTheme(cfg)
	if err != nil {
		fatal("failed to start tetterm: %s", err)
	}

	g, err := newGame(cfg)
	if err != nil {
		fatal("failed to start tetterm: %s", err)
	}

	player, err := sound.New(cfg.sound)
	if err != nil {
		log.WithError(err).Warn("Sound disabled")
	}
	defer player.Close()

	log.WithFields(log.Fields{
		"name":  cfg.name,
		"seed":  cfg.seed,
		"bag":   cfg.bag,
		"theme": theme.Name,
		"sound": player.Enabled(),
	}).Info("New game")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ui := gui.New(gui.NewGameState(g, cfg.name, theme, player))
	if err := ui.Run(ctx); err != nil {
		log.WithError(err).Error("GUI failed")
		fatal("tetterm: %s", err)
	}

	log.WithFields(log.Fields{
		"score":  g.Score(),
		"lines":  g.Lines(),
		"pieces": g.Pieces(),
	}).Info("Exit")

	summary(g, cfg.name)
}
