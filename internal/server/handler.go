package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"github.com/goliatone/go-chartgen/pkg/model"
	"github.com/goliatone/go-chartgen/pkg/orchestrator"
	"github.com/goliatone/go-chartgen/pkg/wire"
)

const (
	// RenderChartProcedure is the connect procedure path of the chart service.
	RenderChartProcedure = "/chartgen.v1.ChartService/RenderChart"

	// RendererHeader optionally names the renderer for one call.
	RendererHeader = "Chartgen-Renderer"

	errorDomain = "chartgen"
)

// Generator renders a chart request.
type Generator interface {
	Generate(ctx context.Context, req orchestrator.Request) (orchestrator.Result, error)
}

// ChartHandler implements the RenderChart procedure.
type ChartHandler struct {
	generator Generator
	logger    *slog.Logger
}

// NewChartHandler wraps generator for connect.
func NewChartHandler(generator Generator, logger *slog.Logger) *ChartHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartHandler{generator: generator, logger: logger}
}

// RenderChart builds and renders one chart. Requests without an id get a
// random one so replies and logs can be correlated. Every chart failure maps
// to CodeInvalidArgument with an ErrorInfo detail carrying the error code.
func (h *ChartHandler) RenderChart(ctx context.Context, req *connect.Request[wire.RenderChartRequest]) (*connect.Response[wire.RenderChartReply], error) {
	msg := req.Msg
	if msg == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("request is required"))
	}
	if err := msg.Validate(); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if strings.TrimSpace(msg.RequestID) == "" {
		msg.RequestID = uuid.NewString()
	}

	result, err := h.generator.Generate(ctx, orchestrator.Request{
		Chart:    msg,
		Renderer: strings.TrimSpace(req.Header().Get(RendererHeader)),
	})
	if err != nil {
		return nil, h.toConnectError(ctx, err, msg.RequestID)
	}

	res := connect.NewResponse(&wire.RenderChartReply{
		RequestID:   msg.RequestID,
		ContentType: result.ContentType,
		ChartData:   result.ChartData,
	})
	res.Header().Set(RendererHeader, result.Renderer)
	return res, nil
}

func (h *ChartHandler) toConnectError(ctx context.Context, err error, requestID string) error {
	switch {
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}

	kind, ok := model.KindOf(err)
	if !ok {
		h.logger.ErrorContext(ctx, "Chart request failed",
			slog.String("request_id", requestID),
			slog.Any("err", err),
		)
		return connect.NewError(connect.CodeInternal, err)
	}

	cause := error(kind)
	var renderErr *model.RenderError
	if errors.As(err, &renderErr) {
		cause = renderErr
	}

	connectErr := connect.NewError(connect.CodeInvalidArgument, errors.New(cause.Error()))
	detail, detailErr := connect.NewErrorDetail(&errdetails.ErrorInfo{
		Reason:   kind.Code(),
		Domain:   errorDomain,
		Metadata: map[string]string{"request_id": requestID},
	})
	if detailErr == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}
