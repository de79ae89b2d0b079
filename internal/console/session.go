package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ytget/places-guide/internal/model"
	"github.com/ytget/places-guide/internal/nav"
)

// Commands understood by a session
const (
	CmdBack     = "b"
	CmdBackLong = "back"
	CmdQuit     = "q"
	CmdQuitLong = "quit"
)

// Session drives a router from line-based input
type Session struct {
	router *nav.Router
	out    io.Writer
}

// NewSession creates a session that prints to out
func NewSession(router *nav.Router, out io.Writer) *Session {
	return &Session{router: router, out: out}
}

// Run prints the current screen and processes commands from in until quit,
// end of input, or ctx is done.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	if err := WriteRender(s.out, s.router.Render()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		quit, err := s.Handle(scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Handle executes one command line and reprints the screen when it changed.
// It reports whether the user asked to quit.
func (s *Session) Handle(line string) (bool, error) {
	cmd := strings.ToLower(strings.TrimSpace(line))

	switch cmd {
	case "":
		return false, nil
	case CmdQuit, CmdQuitLong:
		return true, nil
	case CmdBack, CmdBackLong:
		if !s.router.GoBack() {
			return false, s.message("Уже на главном экране")
		}
		return false, WriteRender(s.out, s.router.Render())
	}

	n, err := strconv.Atoi(cmd)
	if err != nil {
		return false, s.message(fmt.Sprintf("Неизвестная команда: %s", line))
	}

	if !s.selectItem(n) {
		return false, s.message(fmt.Sprintf("Нет пункта %d", n))
	}
	return false, WriteRender(s.out, s.router.Render())
}

// selectItem maps a 1-based position on the current screen to a selection
func (s *Session) selectItem(n int) bool {
	render := s.router.Render()
	idx := n - 1

	switch render.Screen.Kind {
	case model.ScreenCategoryList:
		items := render.Categories.Categories
		if idx < 0 || idx >= len(items) {
			return false
		}
		return s.router.SelectCategory(items[idx])
	case model.ScreenPlaceList:
		items := render.PlaceList.Places
		if idx < 0 || idx >= len(items) {
			return false
		}
		return s.router.SelectPlace(items[idx].ID)
	default:
		return false
	}
}

func (s *Session) message(text string) error {
	_, err := fmt.Fprintln(s.out, text)
	return err
}
