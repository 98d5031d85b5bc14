package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/video-blog/internal/adapter"
	"github.com/MKhiriev/video-blog/models"
)

var (
	errNoCommand      = errors.New("usage: client <register|login|list|create|get|update|delete|version> [flags]")
	errUnknownCommand = errors.New("unknown command")
	errMissingID      = errors.New("-id is required")
)

// run executes one CLI command against the server and prints its JSON result
// to out.
func run(ctx context.Context, server adapter.ServerAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errNoCommand
	}

	command, args := args[0], args[1:]
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	switch command {
	case "register":
		name := fs.String("name", "", "display name")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		if err := fs.Parse(args); err != nil {
			return err
		}

		token, err := server.Register(ctx, models.User{Name: *name, Email: *email, Password: *password})
		if err != nil {
			return err
		}
		return printJSON(out, models.AuthResponse{AccessToken: token.SignedString})

	case "login":
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		if err := fs.Parse(args); err != nil {
			return err
		}

		token, err := server.Login(ctx, models.Credentials{Email: *email, Password: *password})
		if err != nil {
			return err
		}
		return printJSON(out, models.AuthResponse{AccessToken: token.SignedString})

	case "list":
		if err := fs.Parse(args); err != nil {
			return err
		}

		videos, err := server.ListVideos(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, videos)

	case "create":
		name := fs.String("name", "", "video name")
		description := fs.String("description", "", "video description")
		if err := fs.Parse(args); err != nil {
			return err
		}

		video, err := server.CreateVideo(ctx, models.NewVideo{Name: *name, Description: *description})
		if err != nil {
			return err
		}
		return printJSON(out, video)

	case "get":
		id := fs.Int64("id", 0, "video id")
		if err := parseWithID(fs, args, id); err != nil {
			return err
		}

		video, err := server.GetVideo(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(out, video)

	case "update":
		id := fs.Int64("id", 0, "video id")
		name := fs.String("name", "", "new name")
		description := fs.String("description", "", "new description")
		if err := parseWithID(fs, args, id); err != nil {
			return err
		}

		// only flags given on the command line are sent
		var update models.VideoUpdate
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "name":
				update.Name = name
			case "description":
				update.Description = description
			}
		})

		video, err := server.UpdateVideo(ctx, *id, update)
		if err != nil {
			return err
		}
		return printJSON(out, video)

	case "delete":
		id := fs.Int64("id", 0, "video id")
		if err := parseWithID(fs, args, id); err != nil {
			return err
		}

		return server.DeleteVideo(ctx, *id)

	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, command)
	}
}

func parseWithID(fs *flag.FlagSet, args []string, id *int64) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return errMissingID
	}
	return nil
}

func printJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
