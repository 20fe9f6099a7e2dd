package main

import (
	"context"
	"flag"
	"log"

	"github.com/zond/consoleutil/server"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	config := server.DefaultConfig()

	flag.StringVar(&config.SSHAddr, "ssh", config.SSHAddr, "Where to listen to SSH connections.")
	flag.StringVar(&config.Dir, "dir", config.Dir, "Where to keep the host key.")
	flag.StringVar(&config.World, "world", config.World, "World seed file. The built in world is used if empty.")
	flag.DurationVar(&config.Frame, "frame", config.Frame, "Interval between host frames.")
	logPath := flag.String("log", "", "Rotating log file. Logs to stderr if empty.")

	flag.Parse()

	if *logPath != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   *logPath,
			MaxSize:    10,
			MaxBackups: 5,
		})
	}

	srv, err := server.New(config)
	if err != nil {
		log.Fatal(err)
	}

	log.Fatal(srv.Start(context.Background()))
}
