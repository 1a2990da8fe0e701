package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"chatorder/internal/domain/entities"
	"chatorder/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserID  = errors.New("invalid user id")
	ErrInvalidMessage = errors.New("invalid message text")
	ErrInvalidAction  = errors.New("invalid action")
)

const (
	ActionConfirm = "confirm"
	ActionCancel  = "cancel"
)

// IConversationUseCase is the per-turn entry point the chat transport calls.

type IConversationUseCase interface {
	HandleMessage(ctx context.Context, userID, text string) (entities.Reply, error)
	HandleAction(ctx context.Context, userID, action string) (entities.Reply, error)
}

// ConversationUseCase drives the order-taking state machine: extraction,
// intent classification, clarification, confirmation and submission. All
// provider failures are converted to localized user-facing replies here;
// errors escape only for invalid input.
//
// Turns for the same user are serialized with a per-user lock; different
// users proceed concurrently.

type ConversationUseCase struct {
	catalog   *CatalogCache
	extractor *OrderExtractor
	assembler *OrderAssembler
	sessions  *SessionStore
	replier   interfaces.IInferenceProvider
	submitter interfaces.IOrderSubmitter
	orderLog  interfaces.IOrderLogRepository
	cfg       Config

	userLocks sync.Map // user id -> *sync.Mutex
}

var _ IConversationUseCase = (*ConversationUseCase)(nil)

func NewConversationUseCase(
	catalog *CatalogCache,
	extractor *OrderExtractor,
	assembler *OrderAssembler,
	sessions *SessionStore,
	replier interfaces.IInferenceProvider,
	submitter interfaces.IOrderSubmitter,
	orderLog interfaces.IOrderLogRepository,
	cfg Config,
) *ConversationUseCase {
	return &ConversationUseCase{
		catalog:   catalog,
		extractor: extractor,
		assembler: assembler,
		sessions:  sessions,
		replier:   replier,
		submitter: submitter,
		orderLog:  orderLog,
		cfg:       cfg,
	}
}

func (u *ConversationUseCase) lockUser(userID string) func() {
	v, _ := u.userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (u *ConversationUseCase) HandleMessage(ctx context.Context, userID, text string) (entities.Reply, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Reply{}, ErrInvalidUserID
	}
	if strings.TrimSpace(text) == "" {
		return entities.Reply{}, ErrInvalidMessage
	}

	unlock := u.lockUser(userID)
	defer unlock()

	language := DetectLanguage(text)
	u.sessions.SetLanguage(userID, language)
	u.sessions.RecordTurn(userID, "user", text)
	log.Printf("[chat][usecase] message start user_id=%s lang=%s text_len=%d", userID, language, len(text))

	items, err := u.catalog.AvailableItems(ctx)
	if err != nil {
		log.Printf("[chat][usecase] catalog unavailable user_id=%s err=%v", userID, err)
		return u.reply(userID, entities.Reply{Text: msgMenuUnavailable(language)}), nil
	}
	eligible := entities.EligibleItems(items)

	cand := u.extractor.Extract(ctx, text, eligible, language)

	// A clarification turn folds into the stored candidate before
	// classification, so a bare "name, phone, address" follow-up still
	// routes through the transactional path.
	if pending, ok := u.sessions.PendingCandidate(userID); ok && pending.Kind == AwaitingFields {
		cand = entities.MergeCandidates(pending.Candidate, cand)
	}

	intent := ClassifyIntent(text, cand)
	log.Printf("[chat][usecase] classified user_id=%s intent=%s items=%d confidence=%.2f missing=%d",
		userID, intent, len(cand.Items), cand.Confidence, len(cand.MissingFields))

	switch intent {
	case entities.IntentPartialOrder:
		return u.handlePartialOrder(userID, language, cand), nil
	case entities.IntentCompleteOrder:
		return u.handleCompleteOrder(userID, language, cand, eligible), nil
	default:
		return u.handleConversational(ctx, userID, language, text, eligible), nil
	}
}

func (u *ConversationUseCase) handleConversational(ctx context.Context, userID, language, text string, catalog []entities.CatalogItem) entities.Reply {
	if u.replier == nil {
		return u.reply(userID, entities.Reply{Text: msgConversationFallback(language)})
	}
	prompt := buildConversationPrompt(text, formatCatalogForPrompt(catalog), language, u.sessions.History(userID))

	callCtx := ctx
	if u.cfg.ExtractionTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, u.cfg.ExtractionTimeout)
		defer cancel()
	}

	out, err := u.replier.Infer(callCtx, prompt)
	if err != nil || strings.TrimSpace(out) == "" {
		log.Printf("[chat][usecase] conversational reply failed, using static fallback user_id=%s err=%v", userID, err)
		out = msgConversationFallback(language)
	}
	return u.reply(userID, entities.Reply{Text: strings.TrimSpace(out)})
}

func (u *ConversationUseCase) handlePartialOrder(userID, language string, cand entities.OrderCandidate) entities.Reply {
	cand.RecomputeMissingFields()
	u.sessions.SetPendingCandidate(userID, cand, AwaitingFields, "")
	return u.reply(userID, entities.Reply{Text: msgMissingFields(language, cand.MissingFields)})
}

func (u *ConversationUseCase) handleCompleteOrder(userID, language string, cand entities.OrderCandidate, catalog []entities.CatalogItem) entities.Reply {
	cand.RecomputeMissingFields()
	if len(cand.MissingFields) > 0 {
		return u.handlePartialOrder(userID, language, cand)
	}

	// Dry-run assembly for the summary total; an order with nothing
	// resolvable fails now instead of at confirm time.
	sub, dropped, err := u.assembler.Assemble(cand, catalog, u.cfg.DefaultPlaceID)
	if err != nil {
		log.Printf("[chat][usecase] dry-run assembly failed user_id=%s err=%v", userID, err)
		u.sessions.ClearPending(userID)
		return u.reply(userID, entities.Reply{Text: msgResolutionFailed(language)})
	}

	key := deriveIdempotencyKey(cand.CustomerPhone, time.Now())
	u.sessions.SetPendingCandidate(userID, cand, AwaitingConfirmation, key)
	log.Printf("[chat][usecase] awaiting confirmation user_id=%s lines=%d total_minor=%d idempotency_key=%s",
		userID, len(sub.Lines), sub.TotalMinor(), key)

	return u.reply(userID, entities.Reply{
		Text:    msgConfirmSummary(language, sub, dropped),
		Choices: confirmChoices(language),
	})
}

func (u *ConversationUseCase) HandleAction(ctx context.Context, userID, action string) (entities.Reply, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Reply{}, ErrInvalidUserID
	}
	action = strings.TrimSpace(strings.ToLower(action))
	if action != ActionConfirm && action != ActionCancel {
		return entities.Reply{}, ErrInvalidAction
	}

	unlock := u.lockUser(userID)
	defer unlock()

	language := u.sessions.Language(userID)
	log.Printf("[chat][usecase] action start user_id=%s action=%s", userID, action)

	if action == ActionCancel {
		u.sessions.ClearPending(userID)
		return u.reply(userID, entities.Reply{Text: msgCancelled(language)}), nil
	}

	pending, ok := u.sessions.PendingCandidate(userID)
	if !ok || pending.Kind != AwaitingConfirmation {
		// Expected state after expiry or restart, not an error.
		log.Printf("[chat][usecase] confirm without pending candidate user_id=%s", userID)
		return u.reply(userID, entities.Reply{Text: msgOrderExpired(language)}), nil
	}

	items, err := u.catalog.AvailableItems(ctx)
	if err != nil {
		// Catalog gone at confirm time is retryable; keep the candidate.
		log.Printf("[chat][usecase] catalog unavailable at confirm user_id=%s err=%v", userID, err)
		return u.reply(userID, entities.Reply{Text: msgMenuUnavailable(language)}), nil
	}

	sub, dropped, err := u.assembler.Assemble(pending.Candidate, entities.EligibleItems(items), u.cfg.DefaultPlaceID)
	if err != nil {
		log.Printf("[chat][usecase] resolution failed at confirm user_id=%s err=%v", userID, err)
		u.sessions.ClearPending(userID)
		return u.reply(userID, entities.Reply{Text: msgResolutionFailed(language)}), nil
	}
	if len(dropped) > 0 {
		// The menu changed between summary and confirm. Never submit a
		// smaller order than the one the user approved: re-render the
		// summary with the dropped lines called out and ask again.
		pruned := pending.Candidate
		pruned.Items = make([]entities.OrderCandidateLine, 0, len(sub.Lines))
		for _, l := range sub.Lines {
			pruned.Items = append(pruned.Items, entities.OrderCandidateLine{
				FoodName:         l.DisplayName,
				Quantity:         l.Quantity,
				ResolvedItemPath: l.CatalogPath,
			})
		}
		u.sessions.SetPendingCandidate(userID, pruned, AwaitingConfirmation, pending.IdempotencyKey)
		log.Printf("[chat][usecase] menu changed at confirm, asking again user_id=%s dropped=%d lines=%d",
			userID, len(dropped), len(sub.Lines))
		return u.reply(userID, entities.Reply{
			Text:    msgConfirmSummary(language, sub, dropped),
			Choices: confirmChoices(language),
		}), nil
	}

	// Submission gets a longer ceiling than read calls; backend order
	// creation can be slow.
	submitCtx := ctx
	if u.cfg.SubmissionTimeout > 0 {
		var cancel context.CancelFunc
		submitCtx, cancel = context.WithTimeout(ctx, u.cfg.SubmissionTimeout)
		defer cancel()
	}

	conf, err := u.submitter.Submit(submitCtx, sub, pending.IdempotencyKey)
	if err != nil {
		if errors.Is(err, interfaces.ErrSubmissionRejected) {
			log.Printf("[chat][usecase] submission rejected user_id=%s err=%v", userID, err)
			u.sessions.ClearPending(userID)
			return u.reply(userID, entities.Reply{Text: msgSubmissionRejected(language, redactDetail(err))}), nil
		}
		// Transport-class failure: keep the candidate so a second confirm
		// retries with the same idempotency key.
		log.Printf("[chat][usecase] submission transport failure user_id=%s idempotency_key=%s err=%v", userID, pending.IdempotencyKey, err)
		return u.reply(userID, entities.Reply{Text: msgSubmissionRetryable(language)}), nil
	}

	u.logSubmittedOrder(ctx, sub, conf)
	u.sessions.ClearPending(userID)
	log.Printf("[chat][usecase] order created user_id=%s order_ref=%s total_minor=%d", userID, conf.OrderReference, sub.TotalMinor())
	return u.reply(userID, entities.Reply{Text: msgOrderCreated(language, conf)}), nil
}

func (u *ConversationUseCase) logSubmittedOrder(ctx context.Context, sub entities.OrderSubmission, conf entities.OrderConfirmation) {
	if u.orderLog == nil {
		return
	}
	entry := interfaces.OrderLogEntry{
		ID:               uuid.NewString(),
		GuestPhone:       sub.GuestPhone,
		GuestName:        sub.GuestName,
		PlaceReference:   sub.PlaceReference,
		OrderReference:   conf.OrderReference,
		PaymentReference: conf.PaymentReference,
		TotalMinor:       sub.TotalMinor(),
		Lines:            sub.Lines,
		CreatedAt:        time.Now().UTC(),
	}
	if _, err := u.orderLog.Create(ctx, entry); err != nil {
		log.Printf("[chat][usecase] order log write failed order_ref=%s err=%v", conf.OrderReference, err)
	}
}

func (u *ConversationUseCase) reply(userID string, r entities.Reply) entities.Reply {
	u.sessions.RecordTurn(userID, "assistant", r.Text)
	return r
}

// deriveIdempotencyKey builds the dedupe token for one confirmed order from
// the guest phone and the moment the candidate was stored. Stored alongside
// the pending candidate so confirm retries reuse it unchanged.
func deriveIdempotencyKey(phone string, at time.Time) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return fmt.Sprintf("%s-%d", digits.String(), at.Unix())
}

const maxErrorDetailLen = 120

// redactDetail bounds the technical snippet shown for operator diagnosis.
// Truncation lands on a rune boundary so accented provider messages stay
// valid UTF-8.
func redactDetail(err error) string {
	msg := strings.TrimPrefix(err.Error(), interfaces.ErrSubmissionRejected.Error()+": ")
	if len(msg) > maxErrorDetailLen {
		cut := maxErrorDetailLen
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut] + "..."
	}
	return msg
}
