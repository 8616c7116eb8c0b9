// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dayplan/dayplan/ent/chatmessage"
	"github.com/dayplan/dayplan/ent/globalcontext"
	"github.com/dayplan/dayplan/ent/llmcall"
	"github.com/dayplan/dayplan/ent/schema"
	"github.com/dayplan/dayplan/ent/settings"
	"github.com/dayplan/dayplan/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[2].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	globalcontextFields := schema.GlobalContext{}.Fields()
	_ = globalcontextFields
	// globalcontextDescSingleton is the schema descriptor for singleton field.
	globalcontextDescSingleton := globalcontextFields[0].Descriptor()
	// globalcontext.DefaultSingleton holds the default value on creation for the singleton field.
	globalcontext.DefaultSingleton = globalcontextDescSingleton.Default.(bool)
	// globalcontextDescContext is the schema descriptor for context field.
	globalcontextDescContext := globalcontextFields[1].Descriptor()
	// globalcontext.DefaultContext holds the default value on creation for the context field.
	globalcontext.DefaultContext = globalcontextDescContext.Default.(string)
	// globalcontext.ContextValidator is a validator for the "context" field. It is called by the builders before save.
	globalcontext.ContextValidator = globalcontextDescContext.Validators[0].(func(string) error)
	// globalcontextDescUpdatedAt is the schema descriptor for updated_at field.
	globalcontextDescUpdatedAt := globalcontextFields[2].Descriptor()
	// globalcontext.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	globalcontext.DefaultUpdatedAt = globalcontextDescUpdatedAt.Default.(func() time.Time)
	// globalcontext.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	globalcontext.UpdateDefaultUpdatedAt = globalcontextDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmcallFields := schema.LLMCall{}.Fields()
	_ = llmcallFields
	// llmcallDescModuleName is the schema descriptor for module_name field.
	llmcallDescModuleName := llmcallFields[0].Descriptor()
	// llmcall.ModuleNameValidator is a validator for the "module_name" field. It is called by the builders before save.
	llmcall.ModuleNameValidator = llmcallDescModuleName.Validators[0].(func(string) error)
	// llmcallDescCreatedAt is the schema descriptor for created_at field.
	llmcallDescCreatedAt := llmcallFields[4].Descriptor()
	// llmcall.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmcall.DefaultCreatedAt = llmcallDescCreatedAt.Default.(func() time.Time)
	settingsFields := schema.Settings{}.Fields()
	_ = settingsFields
	// settingsDescSingleton is the schema descriptor for singleton field.
	settingsDescSingleton := settingsFields[0].Descriptor()
	// settings.DefaultSingleton holds the default value on creation for the singleton field.
	settings.DefaultSingleton = settingsDescSingleton.Default.(bool)
	// settingsDescLlmModel is the schema descriptor for llm_model field.
	settingsDescLlmModel := settingsFields[1].Descriptor()
	// settings.DefaultLlmModel holds the default value on creation for the llm_model field.
	settings.DefaultLlmModel = settingsDescLlmModel.Default.(string)
	// settingsDescMaxTokens is the schema descriptor for max_tokens field.
	settingsDescMaxTokens := settingsFields[2].Descriptor()
	// settings.DefaultMaxTokens holds the default value on creation for the max_tokens field.
	settings.DefaultMaxTokens = settingsDescMaxTokens.Default.(int)
	// settingsDescUpdatedAt is the schema descriptor for updated_at field.
	settingsDescUpdatedAt := settingsFields[3].Descriptor()
	// settings.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	settings.DefaultUpdatedAt = settingsDescUpdatedAt.Default.(func() time.Time)
	// settings.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	settings.UpdateDefaultUpdatedAt = settingsDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[0].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = func() func(string) error {
		validators := taskDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescDescription is the schema descriptor for description field.
	taskDescDescription := taskFields[1].Descriptor()
	// task.DefaultDescription holds the default value on creation for the description field.
	task.DefaultDescription = taskDescDescription.Default.(string)
	// task.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	task.DescriptionValidator = taskDescDescription.Validators[0].(func(string) error)
	// taskDescContext is the schema descriptor for context field.
	taskDescContext := taskFields[2].Descriptor()
	// task.DefaultContext holds the default value on creation for the context field.
	task.DefaultContext = taskDescContext.Default.(string)
	// task.ContextValidator is a validator for the "context" field. It is called by the builders before save.
	task.ContextValidator = taskDescContext.Validators[0].(func(string) error)
	// taskDescPriority is the schema descriptor for priority field.
	taskDescPriority := taskFields[8].Descriptor()
	// task.DefaultPriority holds the default value on creation for the priority field.
	task.DefaultPriority = taskDescPriority.Default.(float64)
	// taskDescCompleted is the schema descriptor for completed field.
	taskDescCompleted := taskFields[9].Descriptor()
	// task.DefaultCompleted holds the default value on creation for the completed field.
	task.DefaultCompleted = taskDescCompleted.Default.(bool)
	// taskDescNeedsScheduling is the schema descriptor for needs_scheduling field.
	taskDescNeedsScheduling := taskFields[10].Descriptor()
	// task.DefaultNeedsScheduling holds the default value on creation for the needs_scheduling field.
	task.DefaultNeedsScheduling = taskDescNeedsScheduling.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[11].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
}
