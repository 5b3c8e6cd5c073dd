package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tweakd/tweakd/internal/mocks"
)

func newTestSpecsService(t *testing.T, source *mocks.MockSpecSource) *SpecsService {
	t.Helper()

	svc, err := NewSpecsService(SpecsServiceOptions{
		Source: source,
		Logger: testLogger(),
	})
	require.NoError(t, err)
	return svc
}

func TestNewSpecsService_RequiresSource(t *testing.T) {
	_, err := NewSpecsService(SpecsServiceOptions{})
	require.Error(t, err)
}

func TestSpecsService_Read_AllFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSpecSource(ctrl)
	source.EXPECT().CPU(gomock.Any()).Return("AMD Ryzen 7 5800X3D 8-Core Processor", nil)
	source.EXPECT().GPU(gomock.Any()).Return("NVIDIA GeForce RTX 3080", nil)
	source.EXPECT().RAM(gomock.Any()).Return("32GB", nil)

	svc := newTestSpecsService(t, source)

	specs := svc.Read(context.Background())
	assert.Equal(t, "AMD Ryzen 7 5800X3D 8-Core Processor", specs.CPU)
	assert.Equal(t, "NVIDIA GeForce RTX 3080", specs.GPU)
	assert.Equal(t, "32GB", specs.RAM)
}

func TestSpecsService_Read_FieldsDegradeIndependently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSpecSource(ctrl)
	source.EXPECT().CPU(gomock.Any()).Return("", errors.New("probe failed"))
	source.EXPECT().GPU(gomock.Any()).Return("NVIDIA GeForce RTX 3080", nil)
	source.EXPECT().RAM(gomock.Any()).Return("", errors.New("probe failed"))

	svc := newTestSpecsService(t, source)

	specs := svc.Read(context.Background())
	assert.Equal(t, "Unable to detect", specs.CPU)
	assert.Equal(t, "NVIDIA GeForce RTX 3080", specs.GPU)
	assert.Equal(t, "Unable to detect", specs.RAM)
}

func TestSpecsService_Read_EmptyProbeUsesUnknownPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSpecSource(ctrl)
	source.EXPECT().CPU(gomock.Any()).Return("", nil)
	source.EXPECT().GPU(gomock.Any()).Return("", nil)
	source.EXPECT().RAM(gomock.Any()).Return("16GB", nil)

	svc := newTestSpecsService(t, source)

	specs := svc.Read(context.Background())
	assert.Equal(t, "Unknown CPU", specs.CPU)
	assert.Equal(t, "Unknown GPU", specs.GPU)
	assert.Equal(t, "16GB", specs.RAM)
}
