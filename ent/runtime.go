// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/leadrouter/crm-backend/ent/activity"
	"github.com/leadrouter/crm-backend/ent/assignmentrule"
	"github.com/leadrouter/crm-backend/ent/lead"
	"github.com/leadrouter/crm-backend/ent/leadstatushistory"
	"github.com/leadrouter/crm-backend/ent/schema"
	"github.com/leadrouter/crm-backend/ent/user"
	"github.com/leadrouter/crm-backend/ent/whatsapptrigger"
	"github.com/leadrouter/crm-backend/ent/workspace"
	"github.com/leadrouter/crm-backend/ent/workspacemember"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityFields := schema.Activity{}.Fields()
	_ = activityFields
	// activityDescSubject is the schema descriptor for subject field.
	activityDescSubject := activityFields[4].Descriptor()
	// activity.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	activity.SubjectValidator = activityDescSubject.Validators[0].(func(string) error)
	// activityDescCreatedAt is the schema descriptor for created_at field.
	activityDescCreatedAt := activityFields[6].Descriptor()
	// activity.DefaultCreatedAt holds the default value on creation for the created_at field.
	activity.DefaultCreatedAt = activityDescCreatedAt.Default.(func() time.Time)
	assignmentruleFields := schema.AssignmentRule{}.Fields()
	_ = assignmentruleFields
	// assignmentruleDescAssigneeID is the schema descriptor for assignee_id field.
	assignmentruleDescAssigneeID := assignmentruleFields[3].Descriptor()
	// assignmentrule.AssigneeIDValidator is a validator for the "assignee_id" field. It is called by the builders before save.
	assignmentrule.AssigneeIDValidator = assignmentruleDescAssigneeID.Validators[0].(func(int) error)
	// assignmentruleDescPercentage is the schema descriptor for percentage field.
	assignmentruleDescPercentage := assignmentruleFields[4].Descriptor()
	// assignmentrule.DefaultPercentage holds the default value on creation for the percentage field.
	assignmentrule.DefaultPercentage = assignmentruleDescPercentage.Default.(int)
	// assignmentrule.PercentageValidator is a validator for the "percentage" field. It is called by the builders before save.
	assignmentrule.PercentageValidator = func() func(int) error {
		validators := assignmentruleDescPercentage.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(percentage int) error {
			for _, fn := range fns {
				if err := fn(percentage); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// assignmentruleDescPriority is the schema descriptor for priority field.
	assignmentruleDescPriority := assignmentruleFields[5].Descriptor()
	// assignmentrule.DefaultPriority holds the default value on creation for the priority field.
	assignmentrule.DefaultPriority = assignmentruleDescPriority.Default.(int)
	// assignmentruleDescIsEnabled is the schema descriptor for is_enabled field.
	assignmentruleDescIsEnabled := assignmentruleFields[6].Descriptor()
	// assignmentrule.DefaultIsEnabled holds the default value on creation for the is_enabled field.
	assignmentrule.DefaultIsEnabled = assignmentruleDescIsEnabled.Default.(bool)
	// assignmentruleDescAssignmentCount is the schema descriptor for assignment_count field.
	assignmentruleDescAssignmentCount := assignmentruleFields[8].Descriptor()
	// assignmentrule.DefaultAssignmentCount holds the default value on creation for the assignment_count field.
	assignmentrule.DefaultAssignmentCount = assignmentruleDescAssignmentCount.Default.(int)
	// assignmentrule.AssignmentCountValidator is a validator for the "assignment_count" field. It is called by the builders before save.
	assignmentrule.AssignmentCountValidator = assignmentruleDescAssignmentCount.Validators[0].(func(int) error)
	// assignmentruleDescVersion is the schema descriptor for version field.
	assignmentruleDescVersion := assignmentruleFields[9].Descriptor()
	// assignmentrule.DefaultVersion holds the default value on creation for the version field.
	assignmentrule.DefaultVersion = assignmentruleDescVersion.Default.(int)
	// assignmentruleDescCreatedAt is the schema descriptor for created_at field.
	assignmentruleDescCreatedAt := assignmentruleFields[10].Descriptor()
	// assignmentrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	assignmentrule.DefaultCreatedAt = assignmentruleDescCreatedAt.Default.(func() time.Time)
	// assignmentruleDescUpdatedAt is the schema descriptor for updated_at field.
	assignmentruleDescUpdatedAt := assignmentruleFields[11].Descriptor()
	// assignmentrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assignmentrule.DefaultUpdatedAt = assignmentruleDescUpdatedAt.Default.(func() time.Time)
	// assignmentrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assignmentrule.UpdateDefaultUpdatedAt = assignmentruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescFirstName is the schema descriptor for first_name field.
	leadDescFirstName := leadFields[1].Descriptor()
	// lead.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	lead.FirstNameValidator = leadDescFirstName.Validators[0].(func(string) error)
	// leadDescPhone is the schema descriptor for phone field.
	leadDescPhone := leadFields[3].Descriptor()
	// lead.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	lead.PhoneValidator = leadDescPhone.Validators[0].(func(string) error)
	// leadDescSource is the schema descriptor for source field.
	leadDescSource := leadFields[5].Descriptor()
	// lead.DefaultSource holds the default value on creation for the source field.
	lead.DefaultSource = leadDescSource.Default.(string)
	// leadDescStatusChangedAt is the schema descriptor for status_changed_at field.
	leadDescStatusChangedAt := leadFields[8].Descriptor()
	// lead.DefaultStatusChangedAt holds the default value on creation for the status_changed_at field.
	lead.DefaultStatusChangedAt = leadDescStatusChangedAt.Default.(func() time.Time)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[12].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[13].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadstatushistoryFields := schema.LeadStatusHistory{}.Fields()
	_ = leadstatushistoryFields
	// leadstatushistoryDescNewStatus is the schema descriptor for new_status field.
	leadstatushistoryDescNewStatus := leadstatushistoryFields[3].Descriptor()
	// leadstatushistory.NewStatusValidator is a validator for the "new_status" field. It is called by the builders before save.
	leadstatushistory.NewStatusValidator = leadstatushistoryDescNewStatus.Validators[0].(func(string) error)
	// leadstatushistoryDescCreatedAt is the schema descriptor for created_at field.
	leadstatushistoryDescCreatedAt := leadstatushistoryFields[5].Descriptor()
	// leadstatushistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	leadstatushistory.DefaultCreatedAt = leadstatushistoryDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[3].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	whatsapptriggerFields := schema.WhatsAppTrigger{}.Fields()
	_ = whatsapptriggerFields
	// whatsapptriggerDescStatus is the schema descriptor for status field.
	whatsapptriggerDescStatus := whatsapptriggerFields[1].Descriptor()
	// whatsapptrigger.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	whatsapptrigger.StatusValidator = whatsapptriggerDescStatus.Validators[0].(func(string) error)
	// whatsapptriggerDescIsEnabled is the schema descriptor for is_enabled field.
	whatsapptriggerDescIsEnabled := whatsapptriggerFields[2].Descriptor()
	// whatsapptrigger.DefaultIsEnabled holds the default value on creation for the is_enabled field.
	whatsapptrigger.DefaultIsEnabled = whatsapptriggerDescIsEnabled.Default.(bool)
	// whatsapptriggerDescCampaignName is the schema descriptor for campaign_name field.
	whatsapptriggerDescCampaignName := whatsapptriggerFields[3].Descriptor()
	// whatsapptrigger.CampaignNameValidator is a validator for the "campaign_name" field. It is called by the builders before save.
	whatsapptrigger.CampaignNameValidator = whatsapptriggerDescCampaignName.Validators[0].(func(string) error)
	// whatsapptriggerDescSource is the schema descriptor for source field.
	whatsapptriggerDescSource := whatsapptriggerFields[4].Descriptor()
	// whatsapptrigger.DefaultSource holds the default value on creation for the source field.
	whatsapptrigger.DefaultSource = whatsapptriggerDescSource.Default.(string)
	// whatsapptriggerDescTemplateParams is the schema descriptor for template_params field.
	whatsapptriggerDescTemplateParams := whatsapptriggerFields[5].Descriptor()
	// whatsapptrigger.DefaultTemplateParams holds the default value on creation for the template_params field.
	whatsapptrigger.DefaultTemplateParams = whatsapptriggerDescTemplateParams.Default.(string)
	// whatsapptriggerDescParamsFallback is the schema descriptor for params_fallback field.
	whatsapptriggerDescParamsFallback := whatsapptriggerFields[6].Descriptor()
	// whatsapptrigger.DefaultParamsFallback holds the default value on creation for the params_fallback field.
	whatsapptrigger.DefaultParamsFallback = whatsapptriggerDescParamsFallback.Default.(string)
	// whatsapptriggerDescCreatedAt is the schema descriptor for created_at field.
	whatsapptriggerDescCreatedAt := whatsapptriggerFields[7].Descriptor()
	// whatsapptrigger.DefaultCreatedAt holds the default value on creation for the created_at field.
	whatsapptrigger.DefaultCreatedAt = whatsapptriggerDescCreatedAt.Default.(func() time.Time)
	// whatsapptriggerDescUpdatedAt is the schema descriptor for updated_at field.
	whatsapptriggerDescUpdatedAt := whatsapptriggerFields[8].Descriptor()
	// whatsapptrigger.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	whatsapptrigger.DefaultUpdatedAt = whatsapptriggerDescUpdatedAt.Default.(func() time.Time)
	// whatsapptrigger.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	whatsapptrigger.UpdateDefaultUpdatedAt = whatsapptriggerDescUpdatedAt.UpdateDefault.(func() time.Time)
	workspaceFields := schema.Workspace{}.Fields()
	_ = workspaceFields
	// workspaceDescName is the schema descriptor for name field.
	workspaceDescName := workspaceFields[0].Descriptor()
	// workspace.NameValidator is a validator for the "name" field. It is called by the builders before save.
	workspace.NameValidator = workspaceDescName.Validators[0].(func(string) error)
	// workspaceDescWebhookSecret is the schema descriptor for webhook_secret field.
	workspaceDescWebhookSecret := workspaceFields[1].Descriptor()
	// workspace.WebhookSecretValidator is a validator for the "webhook_secret" field. It is called by the builders before save.
	workspace.WebhookSecretValidator = workspaceDescWebhookSecret.Validators[0].(func(string) error)
	// workspaceDescDefaultCountryCode is the schema descriptor for default_country_code field.
	workspaceDescDefaultCountryCode := workspaceFields[2].Descriptor()
	// workspace.DefaultDefaultCountryCode holds the default value on creation for the default_country_code field.
	workspace.DefaultDefaultCountryCode = workspaceDescDefaultCountryCode.Default.(string)
	// workspaceDescCreatedAt is the schema descriptor for created_at field.
	workspaceDescCreatedAt := workspaceFields[3].Descriptor()
	// workspace.DefaultCreatedAt holds the default value on creation for the created_at field.
	workspace.DefaultCreatedAt = workspaceDescCreatedAt.Default.(func() time.Time)
	// workspaceDescUpdatedAt is the schema descriptor for updated_at field.
	workspaceDescUpdatedAt := workspaceFields[4].Descriptor()
	// workspace.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workspace.DefaultUpdatedAt = workspaceDescUpdatedAt.Default.(func() time.Time)
	// workspace.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workspace.UpdateDefaultUpdatedAt = workspaceDescUpdatedAt.UpdateDefault.(func() time.Time)
	workspacememberFields := schema.WorkspaceMember{}.Fields()
	_ = workspacememberFields
	// workspacememberDescJoinedAt is the schema descriptor for joined_at field.
	workspacememberDescJoinedAt := workspacememberFields[4].Descriptor()
	// workspacemember.DefaultJoinedAt holds the default value on creation for the joined_at field.
	workspacemember.DefaultJoinedAt = workspacememberDescJoinedAt.Default.(func() time.Time)
	// workspacememberDescCreatedAt is the schema descriptor for created_at field.
	workspacememberDescCreatedAt := workspacememberFields[5].Descriptor()
	// workspacemember.DefaultCreatedAt holds the default value on creation for the created_at field.
	workspacemember.DefaultCreatedAt = workspacememberDescCreatedAt.Default.(func() time.Time)
}
