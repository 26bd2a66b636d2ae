package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/odds/odds"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidArgument = errors.New("invalid argument")
)

type Interface struct {
	roller *odds.Roller
	in     io.Reader
	out    io.Writer

	hit  *color.Color
	miss *color.Color
	fail *color.Color
}

type Option func(*Interface)

func WithRoller(r *odds.Roller) Option {
	return func(i *Interface) {
		i.roller = r
	}
}

func WithoutColor() Option {
	return func(i *Interface) {
		i.hit.DisableColor()
		i.miss.DisableColor()
		i.fail.DisableColor()
	}
}

func NewInterface(in io.Reader, out io.Writer, opts ...Option) *Interface {
	i := &Interface{
		in:   in,
		out:  out,
		hit:  color.New(color.FgGreen, color.Bold),
		miss: color.New(color.FgHiBlack),
		fail: color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.roller == nil {
		i.roller = odds.New()
	}
	return i
}

// chunkSize is how many values a repeated command writes between checks of
// the context.
const chunkSize = 1 << 12

type line struct {
	text string
	err  error
}

// Run reads one command per line until quit, EOF, or ctx is done. A failing
// command reports an error line and does not end the session. Lines are read
// on a separate goroutine so that a blocked reader does not hold up
// cancellation.
func (i *Interface) Run(ctx context.Context) error {
	lines := make(chan line)
	done := make(chan struct{})
	defer close(done)
	go i.read(lines, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var l line
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l = <-lines:
		}
		if l.err != nil && !errors.Is(l.err, io.EOF) {
			return l.err
		}

		if args := strings.Fields(l.text); len(args) > 0 {
			if args[0] == "quit" {
				return nil
			}
			if cmdErr := i.execute(ctx, args[0], args[1:]); cmdErr != nil {
				if err := ctx.Err(); err != nil {
					return err
				}
				i.println(i.fail.Sprintf("error: %v", cmdErr))
			}
		}
		if l.err != nil {
			return nil
		}
	}
}

func (i *Interface) read(lines chan<- line, done <-chan struct{}) {
	reader := bufio.NewReader(i.in)
	for {
		text, err := reader.ReadString('\n')
		select {
		case lines <- line{text: text, err: err}:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}

func (i *Interface) execute(ctx context.Context, name string, args []string) error {
	switch name {
	case "seed":
		return i.commandSeed(ctx, args)
	case "entropy":
		return i.commandEntropy(ctx)
	case "draw":
		return i.commandDraw(ctx, args)
	case "draw32":
		return i.commandDraw32(ctx, args)
	case "below":
		return i.commandBelow(ctx, args)
	case "onein":
		return i.commandOneIn(ctx, args)
	case "roll":
		return i.commandRoll(ctx, args)
	case "presets":
		return i.commandPresets(ctx)
	case "state":
		return i.commandState(ctx)
	case "jump":
		i.roller.Jump()
		i.println("ok")
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
}

func (i *Interface) commandSeed(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: seed takes one value", ErrInvalidArgument)
	}
	seed, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return fmt.Errorf("%w: seed %q", ErrInvalidArgument, args[0])
	}
	i.roller.Seed(seed)
	i.println(fmt.Sprintf("seed %d", seed))
	return nil
}

func (i *Interface) commandEntropy(_ context.Context) error {
	i.roller = odds.New(odds.WithEntropy())
	i.println(fmt.Sprintf("seed %d", i.roller.LastSeed()))
	return nil
}

func (i *Interface) commandDraw(ctx context.Context, args []string) error {
	n, err := count(args)
	if err != nil {
		return err
	}
	return i.repeat(ctx, n, func() string {
		return strconv.FormatUint(i.roller.Uint64(), 10)
	})
}

func (i *Interface) commandDraw32(ctx context.Context, args []string) error {
	n, err := count(args)
	if err != nil {
		return err
	}
	return i.repeat(ctx, n, func() string {
		return strconv.FormatUint(uint64(i.roller.Uint32()), 10)
	})
}

func (i *Interface) commandBelow(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: below takes a bound and an optional count", ErrInvalidArgument)
	}
	bound, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bound %q", ErrInvalidArgument, args[0])
	}
	n, err := count(args[1:])
	if err != nil {
		return err
	}
	return i.repeat(ctx, n, func() string {
		return strconv.FormatUint(i.roller.Below(bound), 10)
	})
}

func (i *Interface) commandOneIn(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: onein takes one bound", ErrInvalidArgument)
	}
	bound, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: bound %q", ErrInvalidArgument, args[0])
	}
	i.printOutcome(i.roller.OneIn(uint32(bound)))
	return nil
}

func (i *Interface) commandRoll(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: roll takes one preset", ErrInvalidArgument)
	}
	d, err := odds.ParseDenominator(args[0])
	if err != nil {
		return err
	}
	i.printOutcome(i.roller.Roll(d))
	return nil
}

func (i *Interface) commandPresets(_ context.Context) error {
	for _, name := range odds.PresetNames() {
		i.println(fmt.Sprintf("%s %s", name, odds.Presets[name]))
	}
	return nil
}

func (i *Interface) commandState(_ context.Context) error {
	s := i.roller.State()
	i.println(fmt.Sprintf("seed %d state %016x %016x %016x %016x", i.roller.LastSeed(), s[0], s[1], s[2], s[3]))
	return nil
}

func (i *Interface) printOutcome(ok bool) {
	if ok {
		i.println(i.hit.Sprint("hit"))
		return
	}
	i.println(i.miss.Sprint("miss"))
}

// repeat writes next() n times, giving up once ctx is done.
func (i *Interface) repeat(ctx context.Context, n int, next func() string) error {
	for k := 0; k < n; k++ {
		if k%chunkSize == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		i.println(next())
	}
	return nil
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}

func count(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: count %q", ErrInvalidArgument, args[0])
	}
	return n, nil
}
