// Command goshop-admin is a storefront administration CLI built on the goShop
// client. The session persists across invocations in a file backend, so a
// login in one run authenticates the next.
//
// Usage:
//
//	goshop-admin [flags] <command> [args]
//
// Commands:
//
//	register <email> <password> [role]
//	login <email> <password>
//	logout
//	whoami
//	products
//	product <id>
//	create <name> <sku> <price> <stock> [description]
//	update <id> <name> <sku> <price> <stock> [description]
//	delete <id>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	goShop "github.com/MrEthical07/goShop"
	"github.com/MrEthical07/goShop/session"
	"github.com/MrEthical07/goShop/token"
	"github.com/redis/go-redis/v9"
)

func main() {
	var (
		baseURL      = flag.String("base-url", "", "storefront API base URL; defaults to GOSHOP_BASE_URL env or http://localhost:8080/api")
		sessionPath  = flag.String("session-file", "", "session file path; defaults to ~/.goshop/session.json")
		redisAddr    = flag.String("redis-addr", "", "redis address for a shared session backend; overrides the file backend")
		timeout      = flag.Duration("timeout", 15*time.Second, "per-request timeout")
		auditLog     = flag.Bool("audit", false, "emit audit events as JSON lines on stderr")
		enableHist   = flag.Bool("latency", false, "record request latency histograms")
		printMetrics = flag.Bool("metrics", false, "print the metrics snapshot after the command")
	)
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := goShop.DefaultConfig()
	if *baseURL != "" {
		cfg.API.BaseURL = *baseURL
	} else if env := os.Getenv("GOSHOP_BASE_URL"); env != "" {
		cfg.API.BaseURL = env
	}
	cfg.API.Timeout = *timeout
	cfg.Session.Backend = goShop.BackendFile
	cfg.Session.FilePath = *sessionPath
	cfg.Metrics.Enabled = *printMetrics
	cfg.Metrics.EnableLatencyHistograms = *enableHist
	cfg.Audit.Enabled = *auditLog

	builder := goShop.New().WithConfig(cfg)

	var rdb *redis.Client
	if *redisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: *redisAddr})
		defer func() { _ = rdb.Close() }()
		builder = builder.WithRedis(rdb).WithSessionBackend(session.NewRedisBackend(rdb, cfg.Session.RedisPrefix))
	}
	if *auditLog {
		builder = builder.WithAuditSink(goShop.NewJSONWriterSink(os.Stderr))
	}

	client, err := builder.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build client: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := client.Initialize(ctx); err != nil {
		// A broken persisted session already left the store anonymous; warn
		// and continue rather than refuse the command.
		fmt.Fprintf(os.Stderr, "warning: session restore failed: %v\n", err)
	}

	code := run(ctx, client, args)

	if *printMetrics {
		dumpMetrics(client)
	}

	os.Exit(code)
}

func run(ctx context.Context, client *goShop.Client, args []string) int {
	cmd, rest := args[0], args[1:]

	var err error
	switch cmd {
	case "register":
		err = cmdRegister(ctx, client, rest)
	case "login":
		err = cmdLogin(ctx, client, rest)
	case "logout":
		err = cmdLogout(ctx, client)
	case "whoami":
		err = cmdWhoami(client)
	case "products":
		err = cmdProducts(ctx, client)
	case "product":
		err = cmdProduct(ctx, client, rest)
	case "create":
		err = cmdCreate(ctx, client, rest)
	case "update":
		err = cmdUpdate(ctx, client, rest)
	case "delete":
		err = cmdDelete(ctx, client, rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		return 2
	}

	if err != nil {
		return report(ctx, client, err)
	}
	return 0
}

// report translates a classified failure into the CLI's reaction and exit
// code. Unauthorized is the only kind that touches the session: the stale
// credential is dropped so the next command starts anonymous.
func report(ctx context.Context, client *goShop.Client, err error) int {
	switch {
	case errors.Is(err, goShop.ErrUnauthorized):
		if lerr := client.Session().Logout(ctx); lerr != nil {
			fmt.Fprintf(os.Stderr, "warning: clearing session: %v\n", lerr)
		}
		fmt.Fprintln(os.Stderr, "session expired or invalid; please login again")
		return 3
	case errors.Is(err, goShop.ErrForbidden):
		fmt.Fprintln(os.Stderr, "forbidden: your account does not have access to this operation")
		return 4
	case errors.Is(err, goShop.ErrNotFound):
		fmt.Fprintln(os.Stderr, "not found")
		return 5
	case errors.Is(err, goShop.ErrValidation):
		var apiErr *goShop.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(os.Stderr, "invalid input: %s\n", apiErr.Message)
		} else {
			fmt.Fprintln(os.Stderr, "invalid input")
		}
		return 6
	default:
		fmt.Fprintf(os.Stderr, "request failed: %v\n", err)
		return 1
	}
}

func cmdRegister(ctx context.Context, client *goShop.Client, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: register <email> <password> [role]")
	}
	req := goShop.RegisterRequest{Email: args[0], Password: args[1]}
	if len(args) > 2 {
		req.Role = args[2]
	}

	id, err := client.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("registered %s (id %s, role %s)\n", id.Email, id.ID, id.Role)
	return nil
}

func cmdLogin(ctx context.Context, client *goShop.Client, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: login <email> <password>")
	}

	result, err := client.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if err := client.Session().Login(ctx, result.Token, result.User); err != nil {
		return err
	}

	fmt.Printf("logged in as %s\n", result.User.Email)
	return nil
}

func cmdLogout(ctx context.Context, client *goShop.Client) error {
	if err := client.Session().Logout(ctx); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

func cmdWhoami(client *goShop.Client) error {
	snap := client.Session().Snapshot()
	if !snap.IsAuthenticated {
		fmt.Println("not logged in")
		return nil
	}

	fmt.Printf("%s (%s, role %s)\n", snap.Identity.Email, snap.Identity.ID, snap.Identity.Role)

	claims, err := token.Inspect(snap.Credential)
	if err != nil {
		fmt.Println("token: unreadable")
		return nil
	}
	if claims.ExpiresAt.IsZero() {
		fmt.Println("token: no expiry claim")
	} else if claims.Expired(time.Now()) {
		fmt.Println("token: expired (the server decides; the next call may still fail)")
	} else {
		fmt.Printf("token: expires in %s\n", claims.TimeToLive(time.Now()).Round(time.Second))
	}
	return nil
}

func cmdProducts(ctx context.Context, client *goShop.Client) error {
	products, err := client.ListProducts(ctx)
	if err != nil {
		return err
	}

	for _, p := range products {
		fmt.Printf("%s\t%s\t%s\t%.2f\t%d\n", p.ID, p.SKU, p.Name, float64(p.Price), int(p.Stock))
	}
	fmt.Printf("%d product(s)\n", len(products))
	return nil
}

func cmdProduct(ctx context.Context, client *goShop.Client, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: product <id>")
	}

	p, err := client.GetProduct(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("id:          %s\n", p.ID)
	fmt.Printf("sku:         %s\n", p.SKU)
	fmt.Printf("name:        %s\n", p.Name)
	fmt.Printf("price:       %.2f\n", float64(p.Price))
	fmt.Printf("stock:       %d\n", int(p.Stock))
	fmt.Printf("description: %s\n", p.Description)
	return nil
}

func cmdCreate(ctx context.Context, client *goShop.Client, args []string) error {
	input, err := productInput(args)
	if err != nil {
		return err
	}

	p, err := client.CreateProduct(ctx, input)
	if err != nil {
		return err
	}

	fmt.Printf("created %s (id %s)\n", p.Name, p.ID)
	return nil
}

func cmdUpdate(ctx context.Context, client *goShop.Client, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: update <id> <name> <sku> <price> <stock> [description]")
	}
	input, err := productInput(args[1:])
	if err != nil {
		return err
	}

	p, err := client.UpdateProduct(ctx, args[0], input)
	if err != nil {
		return err
	}

	fmt.Printf("updated %s (id %s)\n", p.Name, p.ID)
	return nil
}

func cmdDelete(ctx context.Context, client *goShop.Client, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: delete <id>")
	}
	id := args[0]

	err := client.DeleteProduct(ctx, id)
	if err != nil && !errors.Is(err, goShop.ErrNotFound) {
		return err
	}
	if errors.Is(err, goShop.ErrNotFound) {
		// Already gone upstream; treat the delete as settled.
		fmt.Printf("deleted %s (was already gone)\n", id)
		return nil
	}

	fmt.Printf("deleted %s\n", id)
	return nil
}

func productInput(args []string) (goShop.ProductInput, error) {
	if len(args) < 4 {
		return goShop.ProductInput{}, errors.New("usage: <name> <sku> <price> <stock> [description]")
	}

	price, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return goShop.ProductInput{}, fmt.Errorf("invalid price %q: %v", args[2], err)
	}
	stock, err := strconv.Atoi(args[3])
	if err != nil {
		return goShop.ProductInput{}, fmt.Errorf("invalid stock %q: %v", args[3], err)
	}

	input := goShop.ProductInput{
		Name:  args[0],
		SKU:   args[1],
		Price: goShop.Money(price),
		Stock: goShop.Units(stock),
	}
	if len(args) > 4 {
		input.Description = args[4]
	}
	return input, nil
}

func dumpMetrics(client *goShop.Client) {
	snap := client.MetricsSnapshot()
	for id, v := range snap.Counters {
		if v == 0 {
			continue
		}
		fmt.Fprintf(os.Stderr, "metric %d = %d\n", id, v)
	}
	for id, buckets := range snap.Histograms {
		fmt.Fprintf(os.Stderr, "histogram %d = %v\n", id, buckets)
	}
}
