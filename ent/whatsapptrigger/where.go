// Code generated by ent, DO NOT EDIT.

package whatsapptrigger

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/leadrouter/crm-backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v int) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldWorkspaceID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldStatus, v))
}

// IsEnabled applies equality check predicate on the "is_enabled" field. It's identical to IsEnabledEQ.
func IsEnabled(v bool) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldIsEnabled, v))
}

// CampaignName applies equality check predicate on the "campaign_name" field. It's identical to CampaignNameEQ.
func CampaignName(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldCampaignName, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldSource, v))
}

// TemplateParams applies equality check predicate on the "template_params" field. It's identical to TemplateParamsEQ.
func TemplateParams(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldTemplateParams, v))
}

// ParamsFallback applies equality check predicate on the "params_fallback" field. It's identical to ParamsFallbackEQ.
func ParamsFallback(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldParamsFallback, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v int) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v int) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...int) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...int) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldContainsFold(FieldStatus, v))
}

// IsEnabledEQ applies the EQ predicate on the "is_enabled" field.
func IsEnabledEQ(v bool) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldIsEnabled, v))
}

// IsEnabledNEQ applies the NEQ predicate on the "is_enabled" field.
func IsEnabledNEQ(v bool) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNEQ(FieldIsEnabled, v))
}

// CampaignNameEQ applies the EQ predicate on the "campaign_name" field.
func CampaignNameEQ(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldCampaignName, v))
}

// CampaignNameNEQ applies the NEQ predicate on the "campaign_name" field.
func CampaignNameNEQ(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNEQ(FieldCampaignName, v))
}

// CampaignNameIn applies the In predicate on the "campaign_name" field.
func CampaignNameIn(vs ...string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldIn(FieldCampaignName, vs...))
}

// CampaignNameNotIn applies the NotIn predicate on the "campaign_name" field.
func CampaignNameNotIn(vs ...string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNotIn(FieldCampaignName, vs...))
}

// CampaignNameGT applies the GT predicate on the "campaign_name" field.
func CampaignNameGT(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGT(FieldCampaignName, v))
}

// CampaignNameGTE applies the GTE predicate on the "campaign_name" field.
func CampaignNameGTE(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGTE(FieldCampaignName, v))
}

// CampaignNameLT applies the LT predicate on the "campaign_name" field.
func CampaignNameLT(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLT(FieldCampaignName, v))
}

// CampaignNameLTE applies the LTE predicate on the "campaign_name" field.
func CampaignNameLTE(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLTE(FieldCampaignName, v))
}

// CampaignNameContains applies the Contains predicate on the "campaign_name" field.
func CampaignNameContains(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldContains(FieldCampaignName, v))
}

// CampaignNameHasPrefix applies the HasPrefix predicate on the "campaign_name" field.
func CampaignNameHasPrefix(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldHasPrefix(FieldCampaignName, v))
}

// CampaignNameHasSuffix applies the HasSuffix predicate on the "campaign_name" field.
func CampaignNameHasSuffix(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldHasSuffix(FieldCampaignName, v))
}

// CampaignNameEqualFold applies the EqualFold predicate on the "campaign_name" field.
func CampaignNameEqualFold(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEqualFold(FieldCampaignName, v))
}

// CampaignNameContainsFold applies the ContainsFold predicate on the "campaign_name" field.
func CampaignNameContainsFold(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldContainsFold(FieldCampaignName, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldContainsFold(FieldSource, v))
}

// TemplateParamsEQ applies the EQ predicate on the "template_params" field.
func TemplateParamsEQ(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldTemplateParams, v))
}

// TemplateParamsNEQ applies the NEQ predicate on the "template_params" field.
func TemplateParamsNEQ(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNEQ(FieldTemplateParams, v))
}

// TemplateParamsIn applies the In predicate on the "template_params" field.
func TemplateParamsIn(vs ...string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldIn(FieldTemplateParams, vs...))
}

// TemplateParamsNotIn applies the NotIn predicate on the "template_params" field.
func TemplateParamsNotIn(vs ...string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNotIn(FieldTemplateParams, vs...))
}

// TemplateParamsGT applies the GT predicate on the "template_params" field.
func TemplateParamsGT(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGT(FieldTemplateParams, v))
}

// TemplateParamsGTE applies the GTE predicate on the "template_params" field.
func TemplateParamsGTE(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGTE(FieldTemplateParams, v))
}

// TemplateParamsLT applies the LT predicate on the "template_params" field.
func TemplateParamsLT(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLT(FieldTemplateParams, v))
}

// TemplateParamsLTE applies the LTE predicate on the "template_params" field.
func TemplateParamsLTE(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLTE(FieldTemplateParams, v))
}

// TemplateParamsContains applies the Contains predicate on the "template_params" field.
func TemplateParamsContains(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldContains(FieldTemplateParams, v))
}

// TemplateParamsHasPrefix applies the HasPrefix predicate on the "template_params" field.
func TemplateParamsHasPrefix(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldHasPrefix(FieldTemplateParams, v))
}

// TemplateParamsHasSuffix applies the HasSuffix predicate on the "template_params" field.
func TemplateParamsHasSuffix(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldHasSuffix(FieldTemplateParams, v))
}

// TemplateParamsEqualFold applies the EqualFold predicate on the "template_params" field.
func TemplateParamsEqualFold(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEqualFold(FieldTemplateParams, v))
}

// TemplateParamsContainsFold applies the ContainsFold predicate on the "template_params" field.
func TemplateParamsContainsFold(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldContainsFold(FieldTemplateParams, v))
}

// ParamsFallbackEQ applies the EQ predicate on the "params_fallback" field.
func ParamsFallbackEQ(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldParamsFallback, v))
}

// ParamsFallbackNEQ applies the NEQ predicate on the "params_fallback" field.
func ParamsFallbackNEQ(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNEQ(FieldParamsFallback, v))
}

// ParamsFallbackIn applies the In predicate on the "params_fallback" field.
func ParamsFallbackIn(vs ...string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldIn(FieldParamsFallback, vs...))
}

// ParamsFallbackNotIn applies the NotIn predicate on the "params_fallback" field.
func ParamsFallbackNotIn(vs ...string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNotIn(FieldParamsFallback, vs...))
}

// ParamsFallbackGT applies the GT predicate on the "params_fallback" field.
func ParamsFallbackGT(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGT(FieldParamsFallback, v))
}

// ParamsFallbackGTE applies the GTE predicate on the "params_fallback" field.
func ParamsFallbackGTE(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGTE(FieldParamsFallback, v))
}

// ParamsFallbackLT applies the LT predicate on the "params_fallback" field.
func ParamsFallbackLT(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLT(FieldParamsFallback, v))
}

// ParamsFallbackLTE applies the LTE predicate on the "params_fallback" field.
func ParamsFallbackLTE(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLTE(FieldParamsFallback, v))
}

// ParamsFallbackContains applies the Contains predicate on the "params_fallback" field.
func ParamsFallbackContains(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldContains(FieldParamsFallback, v))
}

// ParamsFallbackHasPrefix applies the HasPrefix predicate on the "params_fallback" field.
func ParamsFallbackHasPrefix(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldHasPrefix(FieldParamsFallback, v))
}

// ParamsFallbackHasSuffix applies the HasSuffix predicate on the "params_fallback" field.
func ParamsFallbackHasSuffix(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldHasSuffix(FieldParamsFallback, v))
}

// ParamsFallbackEqualFold applies the EqualFold predicate on the "params_fallback" field.
func ParamsFallbackEqualFold(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEqualFold(FieldParamsFallback, v))
}

// ParamsFallbackContainsFold applies the ContainsFold predicate on the "params_fallback" field.
func ParamsFallbackContainsFold(v string) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldContainsFold(FieldParamsFallback, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WhatsAppTrigger) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WhatsAppTrigger) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WhatsAppTrigger) predicate.WhatsAppTrigger {
	return predicate.WhatsAppTrigger(sql.NotPredicates(p))
}
