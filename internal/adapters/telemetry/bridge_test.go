package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pkgmod/internal/adapters/telemetry"
	"go.trai.ch/pkgmod/internal/core/ports"
	"go.trai.ch/pkgmod/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogBridge_LogsStartAndEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var messages []string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		messages = append(messages, msg)
	}).Times(2)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(log)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracerWithProvider("test", tp)
	_, span := tracer.Start(context.Background(), "resolve requests", ports.WithAttribute("package", "requests"))
	span.End()

	require.Len(t, messages, 2)
	assert.Equal(t, "resolve requests", messages[0])
	assert.Contains(t, messages[1], "resolve requests done in")
	assert.Contains(t, messages[1], "package=requests")
}

func TestLogBridge_LogsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var last string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) { last = msg }).AnyTimes()

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(log)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := telemetry.NewOTelTracerWithProvider("test", tp).Start(context.Background(), "install broken==0.1")
	span.RecordError(errors.New("installation failed"))
	span.End()

	assert.Contains(t, last, "install broken==0.1 failed after")
	assert.Contains(t, last, "installation failed")
}

func TestLogBridge_NilLogger(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(nil)))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	assert.NotPanics(t, func() {
		_, span := tp.Tracer("test").Start(context.Background(), "span")
		span.End()
	})
}

func TestSetup_RegistersGlobalProvider(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).Times(2)

	shutdown := telemetry.Setup(telemetry.NewLogBridge(log))
	_, span := telemetry.NewOTelTracer("test").Start(context.Background(), "global")
	span.End()

	require.NoError(t, shutdown(context.Background()))
}
