package gpt

import (
	"context"
	"fmt"
	"strings"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

// Assistant is the single entry point the site calls for AI answers. It
// never returns an error: every failure becomes one of the fixed replies
// in prompts.go. A nil completer means no credential is configured.
type Assistant struct {
	completer domain.Completer
	log       *logger.Logger
}

// NewAssistant creates an assistant over completer, which may be nil.
func NewAssistant(completer domain.Completer, log *logger.Logger) *Assistant {
	return &Assistant{completer: completer, log: log}
}

// Online reports whether a completer is configured.
func (a *Assistant) Online() bool { return a.completer != nil }

// Ask answers a single question, optionally about the recipe described by
// recipeContext.
func (a *Assistant) Ask(ctx context.Context, question, recipeContext string) string {
	if a.completer == nil {
		a.log.Warn("gpt: %v, chef is offline", domain.ErrNoCredential)
		return AskOffline
	}

	prompt := promptChef + question
	if recipeContext != "" {
		prompt += contextLead + recipeContext
	}

	reply, err := a.completer.Complete(ctx, []domain.Turn{{Role: domain.RoleUser, Content: prompt}})
	if err != nil {
		a.log.Error("gpt: ask failed: %v", err)
		return AskError
	}
	if reply == "" {
		return AskEmpty
	}
	return reply
}

// AskWithHistory continues a chat. history is the conversation before
// message, oldest first; roles other than user are sent as the assistant.
func (a *Assistant) AskWithHistory(ctx context.Context, message string, history []domain.Turn) string {
	if a.completer == nil {
		a.log.Warn("gpt: %v, chef is offline", domain.ErrNoCredential)
		return ChatOffline
	}

	reply, err := a.completer.Complete(ctx, BuildChatTurns(message, history))
	if err != nil {
		a.log.Error("gpt: chat failed: %v", err)
		return ChatError
	}
	if reply == "" {
		return ChatEmpty
	}
	return reply
}

// BuildChatTurns lays out a chat request: the persona as the first user
// turn, the history with roles normalized, then the new message.
func BuildChatTurns(message string, history []domain.Turn) []domain.Turn {
	turns := make([]domain.Turn, 0, len(history)+2)
	turns = append(turns, domain.Turn{Role: domain.RoleUser, Content: PromptGlobalChef})
	for _, h := range history {
		role := domain.RoleAssistant
		if h.Role == domain.RoleUser {
			role = domain.RoleUser
		}
		turns = append(turns, domain.Turn{Role: role, Content: h.Content})
	}
	return append(turns, domain.Turn{Role: domain.RoleUser, Content: message})
}

// RecipeContext describes a recipe for Ask: its title and ingredient
// names.
func RecipeContext(r *domain.Recipe) string {
	items := make([]string, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		items[i] = ing.Item
	}
	return fmt.Sprintf("Receita: %s. Ingredientes: %s.", r.Title, strings.Join(items, ", "))
}
