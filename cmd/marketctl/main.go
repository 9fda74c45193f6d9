package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"turuplats-client/internal/auction"
	"turuplats-client/internal/cart"
	"turuplats-client/internal/catalog"
	"turuplats-client/internal/chat"
	"turuplats-client/internal/config"
	"turuplats-client/internal/logger"
	"turuplats-client/internal/order"
	"turuplats-client/internal/payment"
	"turuplats-client/internal/rest"
	"turuplats-client/internal/session"
	"turuplats-client/internal/trade"
)

type app struct {
	cfg      *config.Config
	sessions *session.Store
	products *catalog.Store
	carts    *cart.Synchronizer
	bids     *auction.Flow
	trades   *trade.Flow
	orders   *order.View
	chats    *chat.Service
}

func main() {
	email := flag.String("email", os.Getenv("LOGIN_EMAIL"), "account email")
	password := flag.String("password", os.Getenv("LOGIN_PASSWORD"), "account password")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: marketctl [flags] feed|cart|orders|trades|bid|chat ...")
		os.Exit(2)
	}

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	client, err := rest.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	if err != nil {
		log.Fatal(err)
	}

	sessions := session.NewStore(session.NewGateway(client))
	products := catalog.NewStore(catalog.NewGateway(client), cfg.ProductCacheSize)
	payments := payment.NewGateway(client, cfg.PaymentBaseURL, cfg.PaymentPublicKey, cfg.HTTPTimeout)

	a := &app{
		cfg:      cfg,
		sessions: sessions,
		products: products,
		carts:    cart.NewSynchronizer(cart.NewGateway(client), payments, sessions),
		bids:     auction.NewFlow(auction.NewGateway(client), sessions),
		trades:   trade.NewFlow(trade.NewGateway(client), sessions, products),
		orders:   order.NewView(order.NewGateway(client)),
		chats:    chat.NewService(chat.NewGateway(client)),
	}

	ctx := context.Background()
	sessions.Bootstrap(ctx)

	if *email != "" && !sessions.Authenticated() {
		if err := sessions.Login(ctx, session.Credentials{Email: *email, Password: *password}); err != nil {
			log.Fatalf("login failed: %v", err)
		}
	}

	if err := a.run(ctx, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	switch args[0] {
	case "feed":
		return a.feed(ctx, args[1:])
	case "cart":
		return a.cart(ctx)
	case "orders":
		return a.orderList(ctx)
	case "trades":
		return a.tradeList(ctx)
	case "bid":
		return a.bid(ctx, args[1:])
	case "chat":
		return a.chatWatch(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) feed(ctx context.Context, args []string) error {
	if err := a.products.RefreshFeed(ctx); err != nil {
		return err
	}

	filter := catalog.Filter{}
	if len(args) > 0 {
		filter.Search = args[0]
	}

	visible := catalog.Visible(a.products.Products(), nil, time.Now(), filter)
	for _, p := range visible {
		marker := ""
		if p.IsAuction {
			marker = " [auction]"
		}
		fmt.Printf("%4d  %-40s %8.2f%s\n", p.ID, p.Name, p.Price, marker)
	}
	return nil
}

func (a *app) cart(ctx context.Context) error {
	items, err := a.carts.RefreshItems(ctx)
	if err != nil {
		return err
	}

	for _, it := range items {
		fmt.Printf("%4d  %-40s x%d %8.2f\n", it.ID, it.ProductName, it.Quantity, it.Price)
	}
	fmt.Printf("total: %.2f\n", cart.Total(items))
	return nil
}

func (a *app) orderList(ctx context.Context) error {
	if err := a.orders.Refresh(ctx); err != nil {
		return err
	}

	fmt.Println("purchases:")
	for _, o := range a.orders.Purchases() {
		fmt.Printf("%4d  %-40s %s\n", o.ID, o.Product.Name, o.Status)
	}
	fmt.Println("sales:")
	for _, o := range a.orders.Sales() {
		fmt.Printf("%4d  %-40s %s\n", o.ID, o.Product.Name, o.Status)
	}
	return nil
}

func (a *app) tradeList(ctx context.Context) error {
	proposals, err := a.trades.RefreshIncoming(ctx)
	if err != nil {
		return err
	}

	for _, p := range proposals {
		fmt.Printf("%4d  %s offers %q for %q\n", p.ID, p.ProposerName, p.OfferedProductName, p.TargetProductName)
	}
	return nil
}

func (a *app) bid(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: bid <product-id> <amount>")
	}

	var productID int
	if _, err := fmt.Sscan(args[0], &productID); err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}

	product, err := a.products.Product(ctx, productID)
	if err != nil {
		return err
	}

	if _, err := a.bids.Load(ctx, productID); err != nil {
		return err
	}

	if err := a.bids.PlaceBid(ctx, product.Listing(), args[1]); err != nil {
		return err
	}

	fmt.Printf("bid placed, leading bid is now %.2f\n", a.bids.Leading(product.Listing()))
	return nil
}

func (a *app) chatWatch(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: chat <chat-id>")
	}

	var chatID int
	if _, err := fmt.Sscan(args[0], &chatID); err != nil {
		return fmt.Errorf("invalid chat id %q", args[0])
	}

	poller := a.chats.StartPoller(ctx, chatID, a.cfg.ChatPollInterval, func(messages []chat.Message) {
		for _, m := range messages {
			fmt.Printf("[%s] %d: %s\n", m.SentAt.Format(time.Kitchen), m.SenderID, m.Text)
		}
	})
	defer poller.Stop()

	// Watch for half a minute, then release the conversation.
	time.Sleep(30 * time.Second)
	return nil
}
