package main

import "github.com/weixigu/boardgame-go/internal/cli"

func main() {
	cli.Execute()
}
