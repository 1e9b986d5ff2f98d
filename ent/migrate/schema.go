// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivitiesColumns holds the columns for the "activities" table.
	ActivitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"system", "whatsapp", "status_change", "call", "note"}},
		{Name: "subject", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// ActivitiesTable holds the schema information for the "activities" table.
	ActivitiesTable = &schema.Table{
		Name:       "activities",
		Columns:    ActivitiesColumns,
		PrimaryKey: []*schema.Column{ActivitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activities_leads_activities",
				Columns:    []*schema.Column{ActivitiesColumns[5]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "activities_users_activities",
				Columns:    []*schema.Column{ActivitiesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "activities_workspaces_activities",
				Columns:    []*schema.Column{ActivitiesColumns[7]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "activity_lead_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[5], ActivitiesColumns[4]},
			},
			{
				Name:    "activity_workspace_id_type",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[7], ActivitiesColumns[1]},
			},
			{
				Name:    "activity_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[4]},
			},
		},
	}
	// AssignmentRulesColumns holds the columns for the "assignment_rules" table.
	AssignmentRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "assignment_type", Type: field.TypeEnum, Enums: []string{"specific", "round_robin", "percentage"}},
		{Name: "assignee_id", Type: field.TypeInt},
		{Name: "percentage", Type: field.TypeInt, Default: 0},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "is_enabled", Type: field.TypeBool, Default: true},
		{Name: "last_assigned_at", Type: field.TypeTime, Nullable: true},
		{Name: "assignment_count", Type: field.TypeInt, Default: 0},
		{Name: "version", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// AssignmentRulesTable holds the schema information for the "assignment_rules" table.
	AssignmentRulesTable = &schema.Table{
		Name:       "assignment_rules",
		Columns:    AssignmentRulesColumns,
		PrimaryKey: []*schema.Column{AssignmentRulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assignment_rules_workspaces_assignment_rules",
				Columns:    []*schema.Column{AssignmentRulesColumns[12]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assignmentrule_workspace_id_is_enabled",
				Unique:  false,
				Columns: []*schema.Column{AssignmentRulesColumns[12], AssignmentRulesColumns[6]},
			},
			{
				Name:    "assignmentrule_workspace_id_source",
				Unique:  false,
				Columns: []*schema.Column{AssignmentRulesColumns[12], AssignmentRulesColumns[1]},
			},
			{
				Name:    "assignmentrule_priority",
				Unique:  false,
				Columns: []*schema.Column{AssignmentRulesColumns[5]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Default: "OTHER"},
		{Name: "raw_source", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "contacted", "qualified", "negotiating", "won", "lost", "archived"}, Default: "new"},
		{Name: "status_changed_at", Type: field.TypeTime},
		{Name: "course_interested", Type: field.TypeString, Nullable: true},
		{Name: "custom_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeInt, Nullable: true},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "leads_users_owned_leads",
				Columns:    []*schema.Column{LeadsColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "leads_workspaces_leads",
				Columns:    []*schema.Column{LeadsColumns[14]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lead_workspace_id_phone",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[14], LeadsColumns[3]},
			},
			{
				Name:    "lead_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[14], LeadsColumns[7]},
			},
			{
				Name:    "lead_workspace_id_source",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[14], LeadsColumns[5]},
			},
			{
				Name:    "lead_owner_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[13]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[11]},
			},
		},
	}
	// LeadStatusHistoriesColumns holds the columns for the "lead_status_histories" table.
	LeadStatusHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "old_status", Type: field.TypeString, Nullable: true},
		{Name: "new_status", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
	}
	// LeadStatusHistoriesTable holds the schema information for the "lead_status_histories" table.
	LeadStatusHistoriesTable = &schema.Table{
		Name:       "lead_status_histories",
		Columns:    LeadStatusHistoriesColumns,
		PrimaryKey: []*schema.Column{LeadStatusHistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lead_status_histories_leads_status_history",
				Columns:    []*schema.Column{LeadStatusHistoriesColumns[5]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "lead_status_histories_users_status_changes",
				Columns:    []*schema.Column{LeadStatusHistoriesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "leadstatushistory_lead_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadStatusHistoriesColumns[5], LeadStatusHistoriesColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[2]},
			},
		},
	}
	// WhatsAppTriggersColumns holds the columns for the "whats_app_triggers" table.
	WhatsAppTriggersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status", Type: field.TypeString},
		{Name: "is_enabled", Type: field.TypeBool, Default: true},
		{Name: "campaign_name", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Default: "crm"},
		{Name: "template_params", Type: field.TypeString, Default: "[]"},
		{Name: "params_fallback", Type: field.TypeString, Default: "{}"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// WhatsAppTriggersTable holds the schema information for the "whats_app_triggers" table.
	WhatsAppTriggersTable = &schema.Table{
		Name:       "whats_app_triggers",
		Columns:    WhatsAppTriggersColumns,
		PrimaryKey: []*schema.Column{WhatsAppTriggersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "whats_app_triggers_workspaces_whatsapp_triggers",
				Columns:    []*schema.Column{WhatsAppTriggersColumns[9]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "whatsapptrigger_workspace_id_status_is_enabled",
				Unique:  false,
				Columns: []*schema.Column{WhatsAppTriggersColumns[9], WhatsAppTriggersColumns[1], WhatsAppTriggersColumns[2]},
			},
		},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "webhook_secret", Type: field.TypeString},
		{Name: "default_country_code", Type: field.TypeString, Default: "91"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workspace_name",
				Unique:  false,
				Columns: []*schema.Column{WorkspacesColumns[1]},
			},
		},
	}
	// WorkspaceMembersColumns holds the columns for the "workspace_members" table.
	WorkspaceMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "member"}, Default: "member"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "suspended"}, Default: "active"},
		{Name: "joined_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "workspace_id", Type: field.TypeInt},
	}
	// WorkspaceMembersTable holds the schema information for the "workspace_members" table.
	WorkspaceMembersTable = &schema.Table{
		Name:       "workspace_members",
		Columns:    WorkspaceMembersColumns,
		PrimaryKey: []*schema.Column{WorkspaceMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workspace_members_users_workspace_memberships",
				Columns:    []*schema.Column{WorkspaceMembersColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "workspace_members_workspaces_members",
				Columns:    []*schema.Column{WorkspaceMembersColumns[6]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workspacemember_workspace_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{WorkspaceMembersColumns[6], WorkspaceMembersColumns[5]},
			},
			{
				Name:    "workspacemember_workspace_id_role",
				Unique:  false,
				Columns: []*schema.Column{WorkspaceMembersColumns[6], WorkspaceMembersColumns[1]},
			},
			{
				Name:    "workspacemember_user_id",
				Unique:  false,
				Columns: []*schema.Column{WorkspaceMembersColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivitiesTable,
		AssignmentRulesTable,
		LeadsTable,
		LeadStatusHistoriesTable,
		UsersTable,
		WhatsAppTriggersTable,
		WorkspacesTable,
		WorkspaceMembersTable,
	}
)

func init() {
	ActivitiesTable.ForeignKeys[0].RefTable = LeadsTable
	ActivitiesTable.ForeignKeys[1].RefTable = UsersTable
	ActivitiesTable.ForeignKeys[2].RefTable = WorkspacesTable
	AssignmentRulesTable.ForeignKeys[0].RefTable = WorkspacesTable
	LeadsTable.ForeignKeys[0].RefTable = UsersTable
	LeadsTable.ForeignKeys[1].RefTable = WorkspacesTable
	LeadStatusHistoriesTable.ForeignKeys[0].RefTable = LeadsTable
	LeadStatusHistoriesTable.ForeignKeys[1].RefTable = UsersTable
	WhatsAppTriggersTable.ForeignKeys[0].RefTable = WorkspacesTable
	WorkspaceMembersTable.ForeignKeys[0].RefTable = UsersTable
	WorkspaceMembersTable.ForeignKeys[1].RefTable = WorkspacesTable
}
