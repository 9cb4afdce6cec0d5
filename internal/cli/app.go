// Package cli wires the StayEase client together: config, cookie jar, session
// store and resource client are built once here and shared by every command.
package cli

import (
	"errors"
	"fmt"

	"github.com/stayease/stayease/internal/api"
	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/session"
	"github.com/stayease/stayease/pkg/config"
)

type App struct {
	Config  *config.Config
	Jar     *session.Jar
	Session *session.Store
	Client  *api.Client
}

func NewApp() (*App, error) {
	cfg := config.Load()

	jar, err := session.OpenJar(cfg.Session.JarFile)
	if err != nil {
		return nil, fmt.Errorf("open cookie jar: %w", err)
	}

	sess := session.NewStore(jar, cfg.Session.CookieName)
	sess.Restore()

	return &App{
		Config:  cfg,
		Jar:     jar,
		Session: sess,
		Client:  api.New(cfg.API.BaseURL, jar),
	}, nil
}

// requireUser returns the signed-in identity or a sign-in hint.
func (a *App) requireUser() (*domain.User, error) {
	user := a.Session.Current()
	if user == nil {
		return nil, errors.New("not signed in; run 'stayease login' first")
	}
	return user, nil
}

type pageStatus interface {
	Redirect() string
	Err() string
}

// pageError translates a page's terminal guard state into a command error.
func pageError(p pageStatus) error {
	if route := p.Redirect(); route != "" {
		if route == "/auth" {
			return errors.New("not signed in; run 'stayease login' first")
		}
		return fmt.Errorf("this page is for the other role; see %s", route)
	}
	if msg := p.Err(); msg != "" {
		return errors.New(msg)
	}
	return nil
}
