//go:build baremetal && (stm32f3 || stm32f4 || stm32l4 || stm32g0 || stm32g4 || stm32l5 || stm32h7)

// cmd/bringup/main.go
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/ardnew/softusb/pkg"

	"stm32periph-go/board"
	"stm32periph-go/config"
	"stm32periph-go/periph"
	"stm32periph-go/platform"
	"stm32periph-go/rcc"
	"stm32periph-go/usbotg"
)

// boardName picks the embedded profile; override with
// -ldflags "-X main.boardName=h7-ulpi-dev".
var boardName = "nucleo-h743zi"

func main() {
	// Allow the console to settle before we print.
	time.Sleep(2 * time.Second)
	println("boot", platform.Family, boardName)

	// Firmware and USB stack share one logger, gated by the stack level.
	log := pkg.NewLogger(os.Stdout, nil)
	usbotg.SetLogger(log, slog.LevelDebug)

	cfg, err := config.Load(boardName)
	if err != nil {
		log.Error("config", "err", err)
		halt()
	}

	rc := platform.Controller(rcc.WithLogger(log))
	b, err := board.Bring(cfg, platform.Target(), periph.NewRegistry(), rc, board.WithLogger(log))
	if err != nil {
		log.Error("bring-up", "err", err)
		halt()
	}

	for _, c := range b.Summary() {
		log.Info("capability", "name", c.Name, "kind", c.Kind, "info", c.Info)
	}

	// The CAN and USB drivers take the handles from here.
	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()
	for t := range tick.C {
		println(t.Format("15:04:05"), "Heartbeat")
	}
}

func halt() {
	for {
		time.Sleep(time.Hour)
	}
}
