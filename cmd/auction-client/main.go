package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"silent-auction-client/internal/adapters/rest"
	"silent-auction-client/internal/app"
	"silent-auction-client/internal/config"
	"silent-auction-client/internal/domain/shared"
	"silent-auction-client/internal/ports/inbound"
	"silent-auction-client/internal/session"
)

const usage = `Usage: auction-client <command> [flags]

Commands:
  items          browse the catalog (newest first)
  upload         create a new listing
  bid            place a bid on an item
  my-bids        show your bid history
  my-listings    show your own listings
  notifications  show your enriched notification feed
  register       create an account
`

// services bundles the wired application services for command dispatch
type services struct {
	account       *app.AccountService
	catalog       *app.CatalogService
	bids          *app.BidService
	notifications *app.NotificationService
	session       *session.Store
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	initLogging(cfg)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// Cancel in-flight requests on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	svc := wire(cfg)

	if err := dispatch(ctx, svc, os.Args[1], os.Args[2:]); err != nil {
		log.Error().Err(err).Str("command", os.Args[1]).Msg("Command failed")
		os.Exit(1)
	}
}

// wire builds the service graph the way the library is meant to be
// embedded: one shared session store, one REST client behind every
// gateway port.
func wire(cfg *config.Config) *services {
	client := rest.NewClient(rest.ClientParams{
		Config: cfg,
		Logger: log.Logger,
	})
	store := session.NewStore()

	catalog := app.NewCatalogService(app.CatalogServiceParams{
		Items:   client,
		Session: store,
		Logger:  log.Logger,
	})
	bids := app.NewBidService(app.BidServiceParams{
		Bids: client,
		MarkCatalogStale: func() {
			log.Debug().Msg("Catalog marked stale, next fetch returns authoritative prices")
		},
		Logger: log.Logger,
	})
	notifications := app.NewNotificationService(app.NotificationServiceParams{
		Notifications: client,
		Items:         client,
		Config:        cfg,
		Logger:        log.Logger,
	})
	account := app.NewAccountService(app.AccountServiceParams{
		Auth:    client,
		Session: store,
		Logger:  log.Logger,
	})

	return &services{
		account:       account,
		catalog:       catalog,
		bids:          bids,
		notifications: notifications,
		session:       store,
	}
}

func dispatch(ctx context.Context, svc *services, command string, args []string) error {
	switch command {
	case "items":
		return runItems(ctx, svc, args)
	case "upload":
		return runUpload(ctx, svc, args)
	case "bid":
		return runBid(ctx, svc, args)
	case "my-bids":
		return runMyBids(ctx, svc, args)
	case "my-listings":
		return runMyListings(ctx, svc, args)
	case "notifications":
		return runNotifications(ctx, svc, args)
	case "register":
		return runRegister(ctx, svc, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// credentialFlags registers the sign-in flags commands acting on
// behalf of a user share.
func credentialFlags(flags *pflag.FlagSet) (email, password *string) {
	email = flags.String("email", "", "account email")
	password = flags.String("password", "", "account password")
	return email, password
}

// signIn authenticates and returns the stored user
func signIn(ctx context.Context, svc *services, email, password string) (shared.User, error) {
	if email == "" || password == "" {
		return shared.User{}, fmt.Errorf("--email and --password are required")
	}
	if _, err := svc.account.Login(ctx, email, password); err != nil {
		return shared.User{}, err
	}
	user, _ := svc.session.Get()
	return user, nil
}

func runItems(ctx context.Context, svc *services, args []string) error {
	flags := pflag.NewFlagSet("items", pflag.ContinueOnError)
	category := flags.String("category", string(shared.CategoryAll), "filter by category")
	search := flags.String("search", "", "case-insensitive search over title and category")
	seller := flags.String("seller", "", "show only one seller's items")
	if err := flags.Parse(args); err != nil {
		return err
	}

	items, err := svc.catalog.ListItems(ctx, inbound.ListItemsRequest{
		SellerID: *seller,
		// The home feed shows the newest item first; a seller view
		// keeps backend order.
		NewestFirst: *seller == "",
	})
	if err != nil {
		return err
	}

	for _, item := range app.FilterItems(items, shared.Category(*category), *search) {
		printItem(item)
	}
	return nil
}

func runUpload(ctx context.Context, svc *services, args []string) error {
	flags := pflag.NewFlagSet("upload", pflag.ContinueOnError)
	email, password := credentialFlags(flags)
	title := flags.String("title", "", "listing title")
	description := flags.String("description", "", "listing description")
	startingBid := flags.String("starting-bid", "", "starting bid")
	deadline := flags.String("deadline", "", "auction deadline")
	category := flags.String("category", string(shared.CategoryOthers), "listing category")
	imageFile := flags.String("image-file", "", "path of an image to upload")
	imageURL := flags.String("image-url", "", "URL of an already hosted image")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if _, err := signIn(ctx, svc, *email, *password); err != nil {
		return err
	}

	draft := shared.ListingDraft{
		Title:       *title,
		Description: *description,
		Category:    shared.Category(*category),
		StartingBid: *startingBid,
		Deadline:    *deadline,
		ImageURL:    *imageURL,
	}
	if *imageFile != "" {
		file, err := os.Open(*imageFile)
		if err != nil {
			return fmt.Errorf("failed to open image: %w", err)
		}
		defer file.Close()
		draft.Image = file
		draft.ImageFilename = *imageFile
	}

	item, err := svc.catalog.CreateListing(ctx, draft)
	if err != nil {
		return err
	}

	fmt.Printf("Listing created: %s (%s)\n", item.Title, item.ID)
	return nil
}

func runBid(ctx context.Context, svc *services, args []string) error {
	flags := pflag.NewFlagSet("bid", pflag.ContinueOnError)
	email, password := credentialFlags(flags)
	itemID := flags.String("item", "", "item to bid on")
	amount := flags.String("amount", "", "bid amount")
	if err := flags.Parse(args); err != nil {
		return err
	}

	user, err := signIn(ctx, svc, *email, *password)
	if err != nil {
		return err
	}
	if *itemID == "" {
		return fmt.Errorf("--item is required")
	}

	items, err := svc.catalog.ListItems(ctx, inbound.ListItemsRequest{})
	if err != nil {
		return err
	}
	var item *shared.Item
	for i := range items {
		if items[i].ID == *itemID {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return shared.ErrItemNotFound
	}

	bid, err := svc.bids.SubmitBid(ctx, inbound.SubmitBidRequest{
		Item:     *item,
		BidderID: user.ID,
		Amount:   *amount,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Bid of %.2f placed on %q\n", bid.Amount, item.Title)
	return nil
}

func runMyBids(ctx context.Context, svc *services, args []string) error {
	flags := pflag.NewFlagSet("my-bids", pflag.ContinueOnError)
	email, password := credentialFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	user, err := signIn(ctx, svc, *email, *password)
	if err != nil {
		return err
	}

	bids, err := svc.bids.GetMyBids(ctx, user.ID)
	if err != nil {
		return err
	}
	for _, bid := range bids {
		fmt.Printf("%s  item=%s  amount=%.2f\n", bid.CreatedAt.Format(time.RFC3339), bid.ItemID, bid.Amount)
	}
	return nil
}

func runMyListings(ctx context.Context, svc *services, args []string) error {
	flags := pflag.NewFlagSet("my-listings", pflag.ContinueOnError)
	email, password := credentialFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	user, err := signIn(ctx, svc, *email, *password)
	if err != nil {
		return err
	}

	items, err := svc.catalog.ListItems(ctx, inbound.ListItemsRequest{SellerID: user.ID})
	if err != nil {
		return err
	}
	for _, item := range items {
		printItem(item)
	}
	return nil
}

func runNotifications(ctx context.Context, svc *services, args []string) error {
	flags := pflag.NewFlagSet("notifications", pflag.ContinueOnError)
	email, password := credentialFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	user, err := signIn(ctx, svc, *email, *password)
	if err != nil {
		return err
	}

	feed, err := svc.notifications.FetchEnriched(ctx, user.ID)
	if err != nil {
		return err
	}
	for _, entry := range feed {
		if entry.Item != nil {
			fmt.Printf("[%s] %s  (item: %s)\n", entry.Type, entry.Message, entry.Item.Title)
		} else {
			fmt.Printf("[%s] %s\n", entry.Type, entry.Message)
		}
	}
	return nil
}

func runRegister(ctx context.Context, svc *services, args []string) error {
	flags := pflag.NewFlagSet("register", pflag.ContinueOnError)
	name := flags.String("name", "", "display name")
	email := flags.String("email", "", "account email")
	password := flags.String("password", "", "account password")
	role := flags.String("role", string(shared.RoleBidder), "account role (bidder or seller)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" || *password == "" {
		return fmt.Errorf("--name, --email and --password are required")
	}

	err := svc.account.Register(ctx, inbound.RegisterRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     shared.Role(*role),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Account created for %s\n", *email)
	return nil
}

func printItem(item shared.Item) {
	price := "-"
	if current, ok := item.EffectiveCurrentPrice(); ok {
		price = fmt.Sprintf("%.2f", current)
	}
	fmt.Printf("%s  [%s]  %s  current=%s\n", item.ID, item.Category, item.Title, price)
}

func initLogging(cfg *config.Config) {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set log format
	if cfg.Logging.Format == "json" {
		// JSON format (default)
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		// Console format for development
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	// Set global logger
	zerolog.DefaultContextLogger = &log.Logger
}
