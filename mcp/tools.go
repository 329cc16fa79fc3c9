package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/minhvu-dev/shopee-track/internal/marketplace"
	"github.com/minhvu-dev/shopee-track/internal/tracker"
)

// Deps carries what the tools need from the host command: a job store and
// a way to build a dispatch pool per batch.
type Deps struct {
	Store       *tracker.Store
	NewPool     func(workers int) *tracker.Pool
	Workers     int
	Marketplace string
}

var deps Deps

// SetDeps must be called once before the server starts.
func SetDeps(d Deps) {
	deps = d
}

func registerTools(s *server.MCPServer) {
	// get_price
	priceTool := mcp.NewTool("get_price",
		mcp.WithDescription("Check the current price of a product, optionally for a specific variation"),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Product page URL"),
		),
		mcp.WithString("var1",
			mcp.Description("First variation label, e.g. color"),
		),
		mcp.WithString("var2",
			mcp.Description("Second variation label, e.g. size"),
		),
	)
	s.AddTool(priceTool, handleGetPrice)

	// extract_ids
	idsTool := mcp.NewTool("extract_ids",
		mcp.WithDescription("Extract shop and item IDs from a product URL"),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Product page URL"),
		),
	)
	s.AddTool(idsTool, handleExtractIDs)

	// track_workbook
	trackTool := mcp.NewTool("track_workbook",
		mcp.WithDescription("Run a batch price check over a spreadsheet and write today's prices and discounts back"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the .xlsx workbook on the server"),
		),
		mcp.WithNumber("workers",
			mcp.Description("Concurrent price checks (default 4)"),
		),
	)
	s.AddTool(trackTool, handleTrackWorkbook)

	// get_job
	jobTool := mcp.NewTool("get_job",
		mcp.WithDescription("Get the status and results of a batch job by ID"),
		mcp.WithString("job_id",
			mcp.Required(),
			mcp.Description("Job ID returned by track_workbook"),
		),
	)
	s.AddTool(jobTool, handleGetJob)
}

func handleGetPrice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url := request.GetString("url", "")
	if url == "" {
		return mcp.NewToolResultError("url is required"), nil
	}
	var1 := request.GetString("var1", "")
	var2 := request.GetString("var2", "")

	source, err := marketplace.Get(deps.Marketplace)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marketplace error: %v", err)), nil
	}

	price, err := source.GetPrice(ctx, url, var1, var2)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("price error: %v", err)), nil
	}

	data, _ := json.MarshalIndent(map[string]any{
		"url":   url,
		"var1":  var1,
		"var2":  var2,
		"price": price,
	}, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}

func handleExtractIDs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url := request.GetString("url", "")
	if url == "" {
		return mcp.NewToolResultError("url is required"), nil
	}

	source, err := marketplace.Get(deps.Marketplace)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marketplace error: %v", err)), nil
	}

	shopID, itemID, err := source.ExtractIDs(url)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("extract error: %v", err)), nil
	}

	data, _ := json.MarshalIndent(map[string]string{
		"shop_id": shopID,
		"item_id": itemID,
	}, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}

func handleTrackWorkbook(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}
	workers := request.GetInt("workers", deps.Workers)

	pool := deps.NewPool(workers)
	job, err := tracker.Run(ctx, deps.Store, pool, path, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("track error: %v", err)), nil
	}

	data, _ := json.MarshalIndent(job, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}

func handleGetJob(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("job_id", "")
	if id == "" {
		return mcp.NewToolResultError("job_id is required"), nil
	}

	job, err := deps.Store.Get(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("job error: %v", err)), nil
	}

	data, _ := json.MarshalIndent(job, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}
