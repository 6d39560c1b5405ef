package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"github.com/qnkhuat/tetterm/pkg/server"
	"github.com/qnkhuat/tetterm/pkg/util"
)

func main() {
	listen := flag.String("listen", server.DefaultAddr, "address to accept SSH sessions on")
	binary := flag.String("tetterm", "tetterm", "path to the tetterm binary started for each session")
	hostKey := flag.String("hostkey", "", "path to the SSH host key (generated when empty)")
	logPath := flag.String("log", "./tetterm-server.log", "path to log file")
	debug := flag.Bool("debug", false, "enable debug logging")
	idle := flag.Duration("idle", server.DefaultIdleTimeout, "disconnect sessions idle for this long")
	flag.Parse()

	logFile, err := util.InitLog(*logPath, "SERVER: ", *debug)
	if err != nil {
		color.Red("failed to start server: %s", err)
		os.Exit(1)
	}
	defer logFile.Close()

	s := &server.Server{
		Addr:        *listen,
		Binary:      *binary,
		Args:        flag.Args(),
		HostKeyFile: *hostKey,
		IdleTimeout: *idle,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	color.Green("tetterm server listening on %s", *listen)
	color.New(color.Faint).Printf("started %s, logging to %s\n", time.Now().Format(time.RFC3339), *logPath)
	log.WithField("binary", *binary).Info("Server started")

	if err := s.ListenAndServe(ctx); err != nil {
		log.WithError(err).Error("Server failed")
		color.Red("server: %s", err)
		os.Exit(1)
	}

	log.Info("Server stopped")
}
