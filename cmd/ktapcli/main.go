package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"ktap/pkg/api"
	"ktap/pkg/config"
	"ktap/pkg/content"
	"ktap/pkg/identity"
	"ktap/pkg/interaction"
)

const usage = `usage: ktapcli [flags] <command> [args]

commands:
  whoami
  list                        list reviews or discussion posts
  gifts                       show the gift catalog
  thumb <id> up|down
  gift <id> <gift id>
  comments <id>
  comment <id> <text>
  uncomment <id> <comment id>
  report <id> <reason>
`

var errUsage = errors.New("bad usage")

func main() {
	zapLogger, _ := zap.NewDevelopment()
	defer zapLogger.Sync() // flushes buffer, if any
	logger := zapLogger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		logger.Fatalw("command failed", "error", err)
	}
}

type cli struct {
	client   *api.Client
	store    *identity.Store
	guard    *interaction.Guard
	endpoint api.Endpoint
	limit    int64
	out      io.Writer
}

func run(ctx context.Context, args []string, out io.Writer, logger *zap.SugaredLogger) error {
	fs := flag.NewFlagSet("ktapcli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfgPath := fs.String("config", "", "path to a yaml config file; KTAP_* env vars override it")
	discussion := fs.String("discussion", "", "work on posts of this discussion instead of reviews")
	limit := fs.Int64("limit", interaction.DefaultPageSize, "page size for lists")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	cfg, err := config.LoadClient(*cfgPath)
	if err != nil {
		return err
	}

	client, err := api.NewClient(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return err
	}

	store := identity.NewStore(client, identity.NewMemoryStorage(), logger)
	c := &cli{
		client: client,
		store:  store,
		guard: &interaction.Guard{
			Session:   store,
			Navigator: interaction.NavigatorFunc(func(path string) { fmt.Fprintf(out, "sign in first (%s)\n", path) }),
			Notifier:  &interaction.LogNotifier{Logger: logger},
		},
		endpoint: api.Reviews,
		limit:    *limit,
		out:      out,
	}
	if *discussion != "" {
		c.endpoint = api.DiscussionPosts(*discussion)
	}

	if cfg.Email != "" {
		if err := store.Login(ctx, cfg.Email, cfg.Password); err != nil {
			return err
		}
	} else {
		store.Hydrate(ctx)
	}

	return c.dispatch(ctx, fs.Arg(0), fs.Args()[1:])
}

func (c *cli) dispatch(ctx context.Context, cmd string, args []string) error {
	need := map[string]int{
		"whoami": 0, "list": 0, "gifts": 0,
		"thumb": 2, "gift": 2, "comments": 1, "comment": 2, "uncomment": 2, "report": 2,
	}
	n, ok := need[cmd]
	if !ok || len(args) < n {
		return errUsage
	}

	switch cmd {
	case "whoami":
		return c.whoami()
	case "list":
		return c.list(ctx)
	case "gifts":
		return c.gifts(ctx)
	}

	item, err := c.client.Item(ctx, c.endpoint, args[0])
	if err != nil {
		return err
	}
	c.guard.Location = c.endpoint.Path(item.ID)

	switch cmd {
	case "thumb":
		return c.thumb(ctx, item, args[1])
	case "gift":
		return c.gift(ctx, item, args[1])
	case "comments":
		return c.comments(ctx, item)
	case "comment":
		return c.comment(ctx, item, strings.Join(args[1:], " "))
	case "uncomment":
		return c.uncomment(ctx, item, args[1])
	default:
		return c.report(ctx, item, strings.Join(args[1:], " "))
	}
}

func (c *cli) whoami() error {
	u := c.store.User()
	if u == nil {
		fmt.Fprintln(c.out, "not signed in")
		return nil
	}
	fmt.Fprintf(c.out, "%s (id %d) balance %d\n", u.Name, u.ID, u.Balance)
	return nil
}

func (c *cli) list(ctx context.Context) error {
	l := interaction.NewLoader[*content.Item](c.limit, func(ctx context.Context, skip, limit int64) (*content.Page[*content.Item], error) {
		return c.client.Items(ctx, c.endpoint, skip, limit)
	}, func(it *content.Item) string { return it.ID })

	if err := l.Load(ctx); err != nil {
		return err
	}
	for _, it := range l.Items() {
		printItem(c.out, it)
	}
	if l.HasMore() {
		fmt.Fprintf(c.out, "showing %d of %d\n", len(l.Items()), l.Count())
	}
	return nil
}

func (c *cli) gifts(ctx context.Context) error {
	list, err := c.client.Gifts(ctx)
	if err != nil {
		return err
	}
	for _, g := range list {
		fmt.Fprintf(c.out, "%d\t%s\t%d\t%s\n", g.ID, g.Name, g.Price, g.Description)
	}
	return nil
}

func (c *cli) thumb(ctx context.Context, item *content.Item, dir string) error {
	d, err := content.ParseReaction(dir)
	if err != nil || d == content.None {
		return errUsage
	}

	r := interaction.NewReaction(item, c.endpoint, c.client, c.guard)
	if err := r.Thumb(ctx, d); err != nil {
		return err
	}
	t := r.Counts()
	fmt.Fprintf(c.out, "up %d down %d\n", t.Ups, t.Downs)
	return nil
}

func (c *cli) gift(ctx context.Context, item *content.Item, giftArg string) error {
	giftID, err := strconv.ParseInt(giftArg, 10, 64)
	if err != nil {
		return errUsage
	}

	g := interaction.NewGifting(item, c.endpoint, c.client, c.guard)
	if err := g.Open(ctx); err != nil {
		return err
	}
	if err := g.Select(giftID); err != nil {
		return err
	}
	if err := g.Continue(); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "sending %s: %s\n", g.Selected().Name, g.Warning())
	if err := g.Send(ctx); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "item now has %d gifts, your balance is %d\n", item.Counts().Gifts, c.store.User().Balance)
	return nil
}

func (c *cli) thread(item *content.Item) *interaction.CommentThread {
	return interaction.NewCommentThread(item, c.endpoint, c.client, c.guard, c.limit)
}

func (c *cli) comments(ctx context.Context, item *content.Item) error {
	t := c.thread(item)
	if err := t.Load(ctx); err != nil {
		return err
	}
	for _, cm := range t.Items() {
		author := ""
		if cm.User != nil {
			author = cm.User.Name
		}
		fmt.Fprintf(c.out, "%s\t%s\t%s\n", cm.ID, author, cm.Content)
	}
	fmt.Fprintf(c.out, "%d comments\n", t.Count())
	return nil
}

func (c *cli) comment(ctx context.Context, item *content.Item, body string) error {
	cm, err := c.thread(item).Submit(ctx, body)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "comment %s added\n", cm.ID)
	return nil
}

func (c *cli) uncomment(ctx context.Context, item *content.Item, commentID string) error {
	t := c.thread(item)
	if err := t.Load(ctx); err != nil {
		return err
	}
	for _, cm := range t.Items() {
		if cm.ID == commentID {
			if err := t.Delete(ctx, cm); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "comment %s deleted\n", commentID)
			return nil
		}
	}
	return fmt.Errorf("comment %s is not on the first page of %s", commentID, item.ID)
}

func (c *cli) report(ctx context.Context, item *content.Item, reason string) error {
	r := interaction.NewReport(item, c.endpoint, c.client, c.guard)
	if err := r.Submit(ctx, reason); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "reported")
	return nil
}

func printItem(w io.Writer, it *content.Item) {
	m := it.Counts()
	fmt.Fprintf(w, "%s\t%s\tup %d down %d\tgifts %d\tcomments %d\n",
		it.ID, it.Title, m.Ups, m.Downs, m.Gifts, m.Comments)
}
