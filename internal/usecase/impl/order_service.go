package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"forthecos/config"
	deliverycontext "forthecos/internal/delivery/context"
	"forthecos/internal/domain/constants"
	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/payment"
	"forthecos/internal/domain/repository"
	"forthecos/internal/domain/service"
	"forthecos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderWatch is one running poller. Pointer identity tells a finished poller
// apart from a newer one for the same order.
type orderWatch struct {
	cancel context.CancelFunc
}

type orderService struct {
	repo         repository.OrderRepository
	settings     usecase.SettingsUsecase
	compositor   service.Compositor
	storage      service.ObjectStorage
	qrcode       service.QRCodeService
	publisher    service.EventPublisher
	metrics      service.Metrics
	pollInterval time.Duration
	watchTTL     time.Duration
	settleDelay  time.Duration
	now          func() time.Time
	logger       *slog.Logger

	mu       sync.Mutex
	watches  map[uuid.UUID]*orderWatch
	root     context.Context
	stopAll  context.CancelFunc
	watchers sync.WaitGroup
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Lifecycle  fx.Lifecycle `optional:"true"`
	Repo       repository.OrderRepository
	Settings   usecase.SettingsUsecase
	Compositor service.Compositor
	Storage    service.ObjectStorage
	QRCode     service.QRCodeService
	Publisher  service.EventPublisher
	Metrics    service.Metrics
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOrderService creates the order service. Running pollers stop with the app.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	root, stopAll := context.WithCancel(context.Background())
	srv := &orderService{
		repo:         params.Repo,
		settings:     params.Settings,
		compositor:   params.Compositor,
		storage:      params.Storage,
		qrcode:       params.QRCode,
		publisher:    params.Publisher,
		metrics:      params.Metrics,
		pollInterval: params.Config.Studio.PollInterval,
		watchTTL:     params.Config.Studio.SessionTTL,
		settleDelay:  params.Config.Studio.SnapshotSettleDelay,
		now:          time.Now,
		logger:       params.Logger,
		watches:      make(map[uuid.UUID]*orderWatch),
		root:         root,
		stopAll:      stopAll,
	}

	if params.Lifecycle != nil {
		params.Lifecycle.Append(fx.Hook{
			OnStop: srv.stop,
		})
	}

	return srv
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout renders the print snapshots, stores a pending order and builds the payment redirect.
func (srv *orderService) Checkout(ctx context.Context, input usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	if !input.Item.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrStylizedResultRequired)
	}

	settings := srv.settings.Get()
	link := strings.TrimSpace(settings.PaymentLink(input.Item))
	if link == "" {
		srv.log(ctx).Warn("Checkout without payment link", slog.String("item", string(input.Item)))

		return nil, errors.WithStack(domainerrors.ErrPaymentLinkMissing)
	}

	orderID := uuid.New()
	redirectURL, err := payment.BuildRedirectURL(link, input.UserID, orderID)
	if err != nil {
		return nil, err
	}

	previews, err := srv.snapshots(ctx, input)
	if err != nil {
		return nil, err
	}

	order := &entity.PhysicalOrder{
		ID:              orderID,
		UserID:          input.UserID,
		CreatedAt:       srv.now(),
		PaymentOrderID:  constants.PendingPaymentOrderID,
		ItemType:        input.Item,
		ItemName:        settings.ItemName(input.Item),
		Amount:          settings.Price(input.Item),
		Status:          entity.OrderStatusPending,
		PreviewImageURL: previews[0],
	}
	if len(previews) > 1 {
		order.BackPreviewImageURL = previews[1]
	}

	if err := srv.repo.Create(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to store order", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store order")
	}
	srv.metrics.IncOrder(string(entity.OrderStatusPending))
	srv.log(ctx).Info("Order created",
		slog.Any("orderID", orderID),
		slog.String("item", string(input.Item)),
		slog.Float64("amount", order.Amount),
	)

	return &usecase.CheckoutOutput{Order: order, RedirectURL: redirectURL}, nil
}

// snapshots exports the comic once, or the card front then back, letting
// each face settle before it is captured.
func (srv *orderService) snapshots(ctx context.Context, input usecase.CheckoutInput) ([]string, error) {
	surfaces := []entity.Surface{entity.SurfaceComic}
	if input.Item == entity.ItemCardSet {
		surfaces = []entity.Surface{entity.SurfaceCardFront, entity.SurfaceCardBack}
	}

	urls := make([]string, 0, len(surfaces))
	for _, surface := range surfaces {
		if err := sleepContext(ctx, srv.settleDelay); err != nil {
			return nil, errors.Wrap(err, "checkout cancelled")
		}

		png, err := srv.compositor.Compose(ctx, service.ComposeRequest{
			Source:     input.Source,
			Surface:    surface,
			Transforms: input.Transforms,
			Overlay:    input.Overlay,
			Export:     true,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to render %s snapshot", surface)
		}

		url, err := srv.storage.Upload(ctx, constants.StoragePrefixOrders, png, "image/png")
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
		}
		urls = append(urls, url)
	}

	return urls, nil
}

// Watch starts a poller for the order unless it is paid or already watched.
func (srv *orderService) Watch(ctx context.Context, viewer usecase.Principal, orderID uuid.UUID) (*usecase.OrderStatusOutput, error) {
	order, err := srv.Get(ctx, viewer, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsPaid() {
		return &usecase.OrderStatusOutput{Order: order}, nil
	}

	srv.startWatch(order.ID)
	srv.log(ctx).Debug("Watching order", slog.Any("orderID", order.ID))

	return &usecase.OrderStatusOutput{Order: order, Watching: true}, nil
}

func (srv *orderService) Status(ctx context.Context, viewer usecase.Principal, orderID uuid.UUID) (*usecase.OrderStatusOutput, error) {
	order, err := srv.Get(ctx, viewer, orderID)
	if err != nil {
		return nil, err
	}

	return &usecase.OrderStatusOutput{Order: order, Watching: srv.isWatching(orderID)}, nil
}

func (srv *orderService) CancelWatch(ctx context.Context, viewer usecase.Principal, orderID uuid.UUID) error {
	if _, err := srv.Get(ctx, viewer, orderID); err != nil {
		return err
	}

	srv.mu.Lock()
	w, ok := srv.watches[orderID]
	delete(srv.watches, orderID)
	srv.mu.Unlock()

	if ok {
		w.cancel()
		srv.log(ctx).Debug("Stopped watching order", slog.Any("orderID", orderID))
	}

	return nil
}

// ConfirmPayment marks the tracked order paid and publishes the event once.
func (srv *orderService) ConfirmPayment(ctx context.Context, input usecase.ConfirmPaymentInput) (*entity.PhysicalOrder, error) {
	userID, orderID, err := payment.ParseTrackingToken(input.Tracking)
	if err != nil {
		return nil, err
	}

	paymentOrderID := strings.TrimSpace(input.PaymentOrderID)
	if paymentOrderID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "payment order id is required")
	}

	order, err := srv.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrInvalidTrackingToken, "tracking token does not match the order owner")
	}

	changed, err := srv.repo.MarkPaid(ctx, orderID, paymentOrderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark order paid")
	}

	order, err = srv.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload order")
	}
	if !changed {
		srv.log(ctx).Info("Order already paid", slog.Any("orderID", orderID))

		return order, nil
	}

	srv.metrics.IncOrder(string(entity.OrderStatusPaid))
	srv.log(ctx).Info("Order paid", slog.Any("orderID", orderID), slog.String("paymentOrderID", paymentOrderID))

	if err := srv.publisher.PublishOrderPaid(ctx, orderPaidEvent(ctx, order)); err != nil {
		srv.log(ctx).Error("Failed to publish order paid event", slog.Any("orderID", orderID), slog.Any("error", err))
	}

	return order, nil
}

func orderPaidEvent(ctx context.Context, order *entity.PhysicalOrder) *service.OrderPaidEvent {
	event := &service.OrderPaidEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:        order.ID.String(),
		UserID:         order.UserID.String(),
		PaymentOrderID: order.PaymentOrderID,
		ItemType:       string(order.ItemType),
		ItemName:       order.ItemName,
		Amount:         order.Amount,
		PreviewImage:   order.PreviewImageURL,
		BackPreview:    order.BackPreviewImageURL,
	}
	if order.PaidAt != nil {
		event.PaidAt = *order.PaidAt
	}

	return event
}

func (srv *orderService) ListMine(ctx context.Context, viewer usecase.Principal) ([]*entity.PhysicalOrder, error) {
	orders, err := srv.repo.ListByOwner(ctx, viewer.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) ListAll(ctx context.Context, viewer usecase.Principal) ([]*entity.PhysicalOrder, error) {
	if !viewer.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "listing all orders requires the admin role")
	}

	orders, err := srv.repo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Get returns an order to its owner or an admin.
func (srv *orderService) Get(ctx context.Context, viewer usecase.Principal, orderID uuid.UUID) (*entity.PhysicalOrder, error) {
	order, err := srv.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.UserID != viewer.UserID && !viewer.IsAdmin() {
		return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	return order, nil
}

func (srv *orderService) PaymentQR(ctx context.Context, viewer usecase.Principal, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.Get(ctx, viewer, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsPaid() {
		return nil, errors.Wrap(domainerrors.ErrConflict, "order is already paid")
	}

	redirectURL, err := payment.BuildRedirectURL(srv.settings.Get().PaymentLink(order.ItemType), order.UserID, order.ID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GeneratePaymentQR(redirectURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR code")
	}

	return png, nil
}

func (srv *orderService) startWatch(orderID uuid.UUID) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, ok := srv.watches[orderID]; ok {
		return
	}
	if srv.root.Err() != nil {
		return
	}

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if srv.watchTTL > 0 {
		// A watch never outlives the studio session that started it.
		ctx, cancel = context.WithTimeout(srv.root, srv.watchTTL)
	} else {
		ctx, cancel = context.WithCancel(srv.root)
	}
	w := &orderWatch{cancel: cancel}
	srv.watches[orderID] = w

	srv.watchers.Add(1)
	go srv.poll(ctx, orderID, w)
}

// poll checks the order every pollInterval until it is paid, gone, cancelled or expired.
func (srv *orderService) poll(ctx context.Context, orderID uuid.UUID, w *orderWatch) {
	defer srv.watchers.Done()
	defer srv.forget(orderID, w)

	ticker := time.NewTicker(srv.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			order, err := srv.repo.FindByID(ctx, orderID)
			if err != nil {
				if errors.Is(err, repository.ErrOrderNotFound) {
					srv.logger.Warn("Watched order disappeared", slog.Any("orderID", orderID))

					return
				}
				if ctx.Err() == nil {
					srv.logger.Warn("Order poll failed", slog.Any("orderID", orderID), slog.Any("error", err))
				}

				continue
			}
			if order.IsPaid() {
				srv.logger.Info("Watched order confirmed paid", slog.Any("orderID", orderID))

				return
			}
		}
	}
}

func (srv *orderService) forget(orderID uuid.UUID, w *orderWatch) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if current, ok := srv.watches[orderID]; ok && current == w {
		delete(srv.watches, orderID)
	}
	w.cancel()
}

func (srv *orderService) isWatching(orderID uuid.UUID) bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	_, ok := srv.watches[orderID]

	return ok
}

// stop cancels every poller and waits for them to return.
func (srv *orderService) stop(ctx context.Context) error {
	srv.stopAll()

	done := make(chan struct{})
	go func() {
		srv.watchers.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "order watchers did not stop in time")
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
