package main

import (
	"context"

	"github.com/faizmokh/curtaincall/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
