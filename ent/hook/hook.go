// Code generated by ent, DO NOT EDIT.

package hook

import (
	"context"
	"fmt"

	"github.com/warehouse-exchange/wex/ent"
)

// The BuyerNeedFunc type is an adapter to allow the use of ordinary
// function as BuyerNeed mutator.
type BuyerNeedFunc func(context.Context, *ent.BuyerNeedMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f BuyerNeedFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.BuyerNeedMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.BuyerNeedMutation", m)
}

// The CompanyFunc type is an adapter to allow the use of ordinary
// function as Company mutator.
type CompanyFunc func(context.Context, *ent.CompanyMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f CompanyFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.CompanyMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.CompanyMutation", m)
}

// The ContextualMemoryFunc type is an adapter to allow the use of ordinary
// function as ContextualMemory mutator.
type ContextualMemoryFunc func(context.Context, *ent.ContextualMemoryMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ContextualMemoryFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ContextualMemoryMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ContextualMemoryMutation", m)
}

// The ConversationFunc type is an adapter to allow the use of ordinary
// function as Conversation mutator.
type ConversationFunc func(context.Context, *ent.ConversationMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ConversationFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ConversationMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ConversationMutation", m)
}

// The DLATokenFunc type is an adapter to allow the use of ordinary
// function as DLAToken mutator.
type DLATokenFunc func(context.Context, *ent.DLATokenMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f DLATokenFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.DLATokenMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.DLATokenMutation", m)
}

// The EngagementFunc type is an adapter to allow the use of ordinary
// function as Engagement mutator.
type EngagementFunc func(context.Context, *ent.EngagementMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f EngagementFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.EngagementMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.EngagementMutation", m)
}

// The EngagementAgreementFunc type is an adapter to allow the use of ordinary
// function as EngagementAgreement mutator.
type EngagementAgreementFunc func(context.Context, *ent.EngagementAgreementMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f EngagementAgreementFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.EngagementAgreementMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.EngagementAgreementMutation", m)
}

// The EngagementEventFunc type is an adapter to allow the use of ordinary
// function as EngagementEvent mutator.
type EngagementEventFunc func(context.Context, *ent.EngagementEventMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f EngagementEventFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.EngagementEventMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.EngagementEventMutation", m)
}

// The InboundMessageFunc type is an adapter to allow the use of ordinary
// function as InboundMessage mutator.
type InboundMessageFunc func(context.Context, *ent.InboundMessageMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f InboundMessageFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.InboundMessageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.InboundMessageMutation", m)
}

// The InstantBookScoreFunc type is an adapter to allow the use of ordinary
// function as InstantBookScore mutator.
type InstantBookScoreFunc func(context.Context, *ent.InstantBookScoreMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f InstantBookScoreFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.InstantBookScoreMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.InstantBookScoreMutation", m)
}

// The MarketRateFunc type is an adapter to allow the use of ordinary
// function as MarketRate mutator.
type MarketRateFunc func(context.Context, *ent.MarketRateMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f MarketRateFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.MarketRateMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.MarketRateMutation", m)
}

// The MatchFunc type is an adapter to allow the use of ordinary
// function as Match mutator.
type MatchFunc func(context.Context, *ent.MatchMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f MatchFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.MatchMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.MatchMutation", m)
}

// The NotificationFunc type is an adapter to allow the use of ordinary
// function as Notification mutator.
type NotificationFunc func(context.Context, *ent.NotificationMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f NotificationFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.NotificationMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.NotificationMutation", m)
}

// The PaymentRecordFunc type is an adapter to allow the use of ordinary
// function as PaymentRecord mutator.
type PaymentRecordFunc func(context.Context, *ent.PaymentRecordMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f PaymentRecordFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.PaymentRecordMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.PaymentRecordMutation", m)
}

// The PropertyKnowledgeFunc type is an adapter to allow the use of ordinary
// function as PropertyKnowledge mutator.
type PropertyKnowledgeFunc func(context.Context, *ent.PropertyKnowledgeMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f PropertyKnowledgeFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.PropertyKnowledgeMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.PropertyKnowledgeMutation", m)
}

// The PropertyQuestionFunc type is an adapter to allow the use of ordinary
// function as PropertyQuestion mutator.
type PropertyQuestionFunc func(context.Context, *ent.PropertyQuestionMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f PropertyQuestionFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.PropertyQuestionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.PropertyQuestionMutation", m)
}

// The SearchSessionFunc type is an adapter to allow the use of ordinary
// function as SearchSession mutator.
type SearchSessionFunc func(context.Context, *ent.SearchSessionMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SearchSessionFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SearchSessionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SearchSessionMutation", m)
}

// The SupplierAgreementFunc type is an adapter to allow the use of ordinary
// function as SupplierAgreement mutator.
type SupplierAgreementFunc func(context.Context, *ent.SupplierAgreementMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SupplierAgreementFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SupplierAgreementMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SupplierAgreementMutation", m)
}

// The ToggleHistoryFunc type is an adapter to allow the use of ordinary
// function as ToggleHistory mutator.
type ToggleHistoryFunc func(context.Context, *ent.ToggleHistoryMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ToggleHistoryFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ToggleHistoryMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ToggleHistoryMutation", m)
}

// The TruthCoreFunc type is an adapter to allow the use of ordinary
// function as TruthCore mutator.
type TruthCoreFunc func(context.Context, *ent.TruthCoreMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f TruthCoreFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.TruthCoreMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.TruthCoreMutation", m)
}

// The UploadTokenFunc type is an adapter to allow the use of ordinary
// function as UploadToken mutator.
type UploadTokenFunc func(context.Context, *ent.UploadTokenMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f UploadTokenFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.UploadTokenMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.UploadTokenMutation", m)
}

// The UserFunc type is an adapter to allow the use of ordinary
// function as User mutator.
type UserFunc func(context.Context, *ent.UserMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f UserFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.UserMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.UserMutation", m)
}

// The WarehouseFunc type is an adapter to allow the use of ordinary
// function as Warehouse mutator.
type WarehouseFunc func(context.Context, *ent.WarehouseMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f WarehouseFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.WarehouseMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.WarehouseMutation", m)
}

// Condition is a hook condition function.
type Condition func(context.Context, ent.Mutation) bool

// And groups conditions with the AND operator.
func And(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if !first(ctx, m) || !second(ctx, m) {
			return false
		}
		for _, cond := range rest {
			if !cond(ctx, m) {
				return false
			}
		}
		return true
	}
}

// Or groups conditions with the OR operator.
func Or(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if first(ctx, m) || second(ctx, m) {
			return true
		}
		for _, cond := range rest {
			if cond(ctx, m) {
				return true
			}
		}
		return false
	}
}

// Not negates a given condition.
func Not(cond Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		return !cond(ctx, m)
	}
}

// HasOp is a condition testing mutation operation.
func HasOp(op ent.Op) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		return m.Op().Is(op)
	}
}

// HasAddedFields is a condition validating `.AddedField` on fields.
func HasAddedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.AddedField(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.AddedField(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasClearedFields is a condition validating `.FieldCleared` on fields.
func HasClearedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if exists := m.FieldCleared(field); !exists {
			return false
		}
		for _, field := range fields {
			if exists := m.FieldCleared(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasFields is a condition validating `.Field` on fields.
func HasFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.Field(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.Field(field); !exists {
				return false
			}
		}
		return true
	}
}

// If executes the given hook under condition.
//
//	hook.If(ComputeAverage, And(HasFields(...), HasAddedFields(...)))
func If(hk ent.Hook, cond Condition) ent.Hook {
	return func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if cond(ctx, m) {
				return hk(next).Mutate(ctx, m)
			}
			return next.Mutate(ctx, m)
		})
	}
}

// On executes the given hook only for the given operation.
//
//	hook.On(Log, ent.Delete|ent.Create)
func On(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, HasOp(op))
}

// Unless skips the given hook only for the given operation.
//
//	hook.Unless(Log, ent.Update|ent.UpdateOne)
func Unless(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, Not(HasOp(op)))
}

// FixedError is a hook returning a fixed error.
func FixedError(err error) ent.Hook {
	return func(ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(context.Context, ent.Mutation) (ent.Value, error) {
			return nil, err
		})
	}
}

// Reject returns a hook that rejects all operations that match op.
//
//	func (T) Hooks() []ent.Hook {
//		return []ent.Hook{
//			Reject(ent.Delete|ent.Update),
//		}
//	}
func Reject(op ent.Op) ent.Hook {
	hk := FixedError(fmt.Errorf("%s operation is not allowed", op))
	return On(hk, op)
}

// Chain acts as a list of hooks and is effectively immutable.
// Once created, it will always hold the same set of hooks in the same order.
type Chain struct {
	hooks []ent.Hook
}

// NewChain creates a new chain of hooks.
func NewChain(hooks ...ent.Hook) Chain {
	return Chain{append([]ent.Hook(nil), hooks...)}
}

// Hook chains the list of hooks and returns the final hook.
func (c Chain) Hook() ent.Hook {
	return func(mutator ent.Mutator) ent.Mutator {
		for i := len(c.hooks) - 1; i >= 0; i-- {
			mutator = c.hooks[i](mutator)
		}
		return mutator
	}
}

// Append extends a chain, adding the specified hook
// as the last ones in the mutation flow.
func (c Chain) Append(hooks ...ent.Hook) Chain {
	newHooks := make([]ent.Hook, 0, len(c.hooks)+len(hooks))
	newHooks = append(newHooks, c.hooks...)
	newHooks = append(newHooks, hooks...)
	return Chain{newHooks}
}

// Extend extends a chain, adding the specified chain
// as the last ones in the mutation flow.
func (c Chain) Extend(chain Chain) Chain {
	return c.Append(chain.hooks...)
}
