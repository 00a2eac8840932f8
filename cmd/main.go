package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/meghashyamc/wordseek/config"
	"github.com/meghashyamc/wordseek/console"
)

type CLI struct {
	Env     string `help:"Configuration environment (reads config/config.<env>.yaml)" env:"ENV"`
	Folder  string `short:"f" help:"Folder to search, prompted for when missing or invalid"`
	Keyword string `short:"k" help:"Keyword to search for, prompted for when missing or invalid"`
	NoWait  bool   `help:"Exit without waiting for Enter after the report"`
}

func main() {
	godotenv.Load()

	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("wordseek"),
		kong.Description("Find Word documents (.doc, .docx) under a folder that contain a keyword"),
	)

	cfg, err := config.Load(cli.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		return
	}

	ctx := context.Background()
	opts := console.Options{Folder: cli.Folder, Keyword: cli.Keyword, NoWait: cli.NoWait}
	if err := console.Run(ctx, cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
	}
}
