package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/rummy-online/client/service"
	"github.com/rummy-online/client/state"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if len(os.Args) < 5 {
		fmt.Println("usage: client <base-url> <stream-url> <game-id> <user-name> [csrf-token]")
		return
	}
	config := service.Config{
		BaseURL:   os.Args[1],
		StreamURL: os.Args[2],
		GameID:    os.Args[3],
		UserName:  os.Args[4],
	}
	if len(os.Args) > 5 {
		config.CSRFToken = os.Args[5]
	}
	session := service.Connect(config)
	defer service.Disconnect(session)
	async.Async(func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			session.Input(scanner.Text())
		}
	})
	log.Error(state.Run(session))
}
