package main

import (
	"flag"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"ppdmap/calculator"
	"ppdmap/parameter"
	"ppdmap/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	cfgPath := flag.String("config", "conf/config.ini", "path of the ini config file")
	flag.Parse()

	cfg, err := calculator.LoadConfig(*cfgPath)
	if err != nil {
		log.WithError(err).Warn("配置文件读取错误，使用默认配置")
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Warn("unknown log level")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	calculator.SetWorkers(cfg.Workers)

	catalog, err := parameter.Load()
	if err != nil {
		log.Fatal("err: ", err)
	}
	defaults := cfg.Apply(catalog.Defaults())
	if err := calculator.Validate(defaults); err != nil {
		log.Fatal("err: ", err)
	}
	if err := calculator.ValidateDim(defaults, cfg.MaxDim); err != nil {
		log.Fatal("err: ", err)
	}

	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(cfg.Addr, cfg.Path, upgrader, catalog, defaults, cfg.MaxDim)
	if err := s.Serve(); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
