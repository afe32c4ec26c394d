// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/escriba/ent/answerevent"
	"github.com/abhisek/escriba/ent/drillevent"
	"github.com/abhisek/escriba/ent/llmrequestevent"
	"github.com/abhisek/escriba/ent/roundevent"
	"github.com/abhisek/escriba/ent/schema"
	"github.com/abhisek/escriba/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescRoundID is the schema descriptor for round_id field.
	answereventDescRoundID := answereventFields[0].Descriptor()
	// answerevent.RoundIDValidator is a validator for the "round_id" field. It is called by the builders before save.
	answerevent.RoundIDValidator = answereventDescRoundID.Validators[0].(func(string) error)
	// answereventDescPromptText is the schema descriptor for prompt_text field.
	answereventDescPromptText := answereventFields[1].Descriptor()
	// answerevent.PromptTextValidator is a validator for the "prompt_text" field. It is called by the builders before save.
	answerevent.PromptTextValidator = answereventDescPromptText.Validators[0].(func(string) error)
	// answereventDescBadge is the schema descriptor for badge field.
	answereventDescBadge := answereventFields[2].Descriptor()
	// answerevent.DefaultBadge holds the default value on creation for the badge field.
	answerevent.DefaultBadge = answereventDescBadge.Default.(string)
	// answereventDescReason is the schema descriptor for reason field.
	answereventDescReason := answereventFields[5].Descriptor()
	// answerevent.DefaultReason holds the default value on creation for the reason field.
	answerevent.DefaultReason = answereventDescReason.Default.(string)
	// answereventDescSuggestion is the schema descriptor for suggestion field.
	answereventDescSuggestion := answereventFields[7].Descriptor()
	// answerevent.DefaultSuggestion holds the default value on creation for the suggestion field.
	answerevent.DefaultSuggestion = answereventDescSuggestion.Default.(string)
	drilleventMixin := schema.DrillEvent{}.Mixin()
	drilleventMixinFields0 := drilleventMixin[0].Fields()
	_ = drilleventMixinFields0
	drilleventFields := schema.DrillEvent{}.Fields()
	_ = drilleventFields
	// drilleventDescTimestamp is the schema descriptor for timestamp field.
	drilleventDescTimestamp := drilleventMixinFields0[1].Descriptor()
	// drillevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	drillevent.DefaultTimestamp = drilleventDescTimestamp.Default.(func() time.Time)
	// drilleventDescRoundID is the schema descriptor for round_id field.
	drilleventDescRoundID := drilleventFields[0].Descriptor()
	// drillevent.RoundIDValidator is a validator for the "round_id" field. It is called by the builders before save.
	drillevent.RoundIDValidator = drilleventDescRoundID.Validators[0].(func(string) error)
	// drilleventDescKind is the schema descriptor for kind field.
	drilleventDescKind := drilleventFields[1].Descriptor()
	// drillevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	drillevent.KindValidator = drilleventDescKind.Validators[0].(func(string) error)
	// drilleventDescVariant is the schema descriptor for variant field.
	drilleventDescVariant := drilleventFields[2].Descriptor()
	// drillevent.VariantValidator is a validator for the "variant" field. It is called by the builders before save.
	drillevent.VariantValidator = drilleventDescVariant.Validators[0].(func(string) error)
	// drilleventDescPrompt is the schema descriptor for prompt field.
	drilleventDescPrompt := drilleventFields[3].Descriptor()
	// drillevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	drillevent.PromptValidator = drilleventDescPrompt.Validators[0].(func(string) error)
	// drilleventDescStreakAfter is the schema descriptor for streak_after field.
	drilleventDescStreakAfter := drilleventFields[6].Descriptor()
	// drillevent.DefaultStreakAfter holds the default value on creation for the streak_after field.
	drillevent.DefaultStreakAfter = drilleventDescStreakAfter.Default.(int)
	// drilleventDescCleared is the schema descriptor for cleared field.
	drilleventDescCleared := drilleventFields[8].Descriptor()
	// drillevent.DefaultCleared holds the default value on creation for the cleared field.
	drillevent.DefaultCleared = drilleventDescCleared.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	roundeventMixin := schema.RoundEvent{}.Mixin()
	roundeventMixinFields0 := roundeventMixin[0].Fields()
	_ = roundeventMixinFields0
	roundeventFields := schema.RoundEvent{}.Fields()
	_ = roundeventFields
	// roundeventDescTimestamp is the schema descriptor for timestamp field.
	roundeventDescTimestamp := roundeventMixinFields0[1].Descriptor()
	// roundevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	roundevent.DefaultTimestamp = roundeventDescTimestamp.Default.(func() time.Time)
	// roundeventDescRoundID is the schema descriptor for round_id field.
	roundeventDescRoundID := roundeventFields[0].Descriptor()
	// roundevent.RoundIDValidator is a validator for the "round_id" field. It is called by the builders before save.
	roundevent.RoundIDValidator = roundeventDescRoundID.Validators[0].(func(string) error)
	// roundeventDescLang is the schema descriptor for lang field.
	roundeventDescLang := roundeventFields[1].Descriptor()
	// roundevent.LangValidator is a validator for the "lang" field. It is called by the builders before save.
	roundevent.LangValidator = roundeventDescLang.Validators[0].(func(string) error)
	// roundeventDescTheme is the schema descriptor for theme field.
	roundeventDescTheme := roundeventFields[2].Descriptor()
	// roundevent.ThemeValidator is a validator for the "theme" field. It is called by the builders before save.
	roundevent.ThemeValidator = roundeventDescTheme.Validators[0].(func(string) error)
	// roundeventDescWrongCount is the schema descriptor for wrong_count field.
	roundeventDescWrongCount := roundeventFields[4].Descriptor()
	// roundevent.DefaultWrongCount holds the default value on creation for the wrong_count field.
	roundevent.DefaultWrongCount = roundeventDescWrongCount.Default.(int)
	// roundeventDescScore is the schema descriptor for score field.
	roundeventDescScore := roundeventFields[5].Descriptor()
	// roundevent.DefaultScore holds the default value on creation for the score field.
	roundevent.DefaultScore = roundeventDescScore.Default.(int)
	// roundeventDescFocusTag is the schema descriptor for focus_tag field.
	roundeventDescFocusTag := roundeventFields[6].Descriptor()
	// roundevent.DefaultFocusTag holds the default value on creation for the focus_tag field.
	roundevent.DefaultFocusTag = roundeventDescFocusTag.Default.(string)
	// roundeventDescUsedFallback is the schema descriptor for used_fallback field.
	roundeventDescUsedFallback := roundeventFields[7].Descriptor()
	// roundevent.DefaultUsedFallback holds the default value on creation for the used_fallback field.
	roundevent.DefaultUsedFallback = roundeventDescUsedFallback.Default.(bool)
	// roundeventDescElapsedSecs is the schema descriptor for elapsed_secs field.
	roundeventDescElapsedSecs := roundeventFields[8].Descriptor()
	// roundevent.DefaultElapsedSecs holds the default value on creation for the elapsed_secs field.
	roundevent.DefaultElapsedSecs = roundeventDescElapsedSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
