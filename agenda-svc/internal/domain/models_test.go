package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinutosDoDia(t *testing.T) {
	tests := []struct {
		hora    string
		want    int
		wantErr bool
	}{
		{hora: "00:00", want: 0},
		{hora: "10:30", want: 630},
		{hora: "23:59", want: 1439},
		{hora: "08:15:00", want: 495},
		{hora: "24:00", wantErr: true},
		{hora: "10h30", wantErr: true},
		{hora: "", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.hora, func(t *testing.T) {
			got, err := MinutosDoDia(testCase.hora)
			if testCase.wantErr {
				assert.ErrorIs(t, err, ErrHoraInvalida)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestValidarData(t *testing.T) {
	assert.NoError(t, ValidarData("2024-12-24"))
	assert.ErrorIs(t, ValidarData("24/12/2024"), ErrDataInvalida)
	assert.ErrorIs(t, ValidarData("2024-02-30"), ErrDataInvalida)
}
