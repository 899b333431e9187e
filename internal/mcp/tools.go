package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool definitions. Descriptions are what MCP clients show to the model,
// so they spell out defaults and constraints rather than relying on
// schema alone.

var addToolDef = mcp.NewTool("timer_add",
	mcp.WithDescription("Create a new countdown timer. Timers start paused at their full duration."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Display name for the timer")),
	mcp.WithString("category", mcp.Required(), mcp.Description("Category label used for grouping and bulk actions (case-sensitive)")),
	mcp.WithNumber("duration", mcp.Required(), mcp.Description("Countdown length in seconds; must be > 0")),
	mcp.WithBoolean("halfway_alert", mcp.Description("Fire a halfway notification when the countdown passes the midpoint")),
)

var startToolDef = mcp.NewTool("timer_start",
	mcp.WithDescription("Start a paused timer. Completed timers must be reset before they can run again."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Timer ID")),
)

var pauseToolDef = mcp.NewTool("timer_pause",
	mcp.WithDescription("Pause a running timer, keeping its remaining time."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Timer ID")),
)

var resetToolDef = mcp.NewTool("timer_reset",
	mcp.WithDescription("Reset a timer to paused at its full duration. Also re-opens a completed timer."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Timer ID")),
)

var completeToolDef = mcp.NewTool("timer_complete",
	mcp.WithDescription("Complete a timer immediately, archiving a history entry."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Timer ID")),
)

var deleteToolDef = mcp.NewTool("timer_delete",
	mcp.WithDescription("Delete a timer from the live set. History entries are kept."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Timer ID")),
)

var listToolDef = mcp.NewTool("timer_list",
	mcp.WithDescription("List live timers in creation order, optionally filtered to one category."),
	mcp.WithString("category", mcp.Description("Exact category filter; empty lists everything")),
)

var categoryStartToolDef = mcp.NewTool("category_start",
	mcp.WithDescription("Start every non-completed timer in a category."),
	mcp.WithString("category", mcp.Required(), mcp.Description("Category label (case-sensitive)")),
)

var categoryPauseToolDef = mcp.NewTool("category_pause",
	mcp.WithDescription("Pause every running timer in a category."),
	mcp.WithString("category", mcp.Required(), mcp.Description("Category label (case-sensitive)")),
)

var categoryResetToolDef = mcp.NewTool("category_reset",
	mcp.WithDescription("Reset every timer in a category to paused at full duration."),
	mcp.WithString("category", mcp.Required(), mcp.Description("Category label (case-sensitive)")),
)

var historyToolDef = mcp.NewTool("history_list",
	mcp.WithDescription("List completed-timer history grouped by calendar day, newest first."),
	mcp.WithString("category", mcp.Description("Exact category filter; empty or \"all\" lists everything")),
)

var exportToolDef = mcp.NewTool("history_export",
	mcp.WithDescription("Export the full history collection as a JSON file. Defaults to ~/.tickdown/exports."),
	mcp.WithString("path", mcp.Description("Destination .json path; must be directly in an allowed directory")),
)
