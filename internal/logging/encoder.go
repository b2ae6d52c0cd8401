package logging

import (
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/backmassage/tvruntime/internal/term"
)

// successKey marks entries logged through Logger.Success. The encoder
// consumes it; it never reaches the output.
const successKey = "success"

// successEncoder paints marked entries' messages in color and drops the
// marker field. With an empty color it only drops the marker.
type successEncoder struct {
	zapcore.Encoder
	color string
}

func (e successEncoder) Clone() zapcore.Encoder {
	return successEncoder{Encoder: e.Encoder.Clone(), color: e.color}
}

func (e successEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	kept := fields[:0:0]
	marked := false
	for _, f := range fields {
		if f.Key == successKey && f.Type == zapcore.BoolType {
			marked = true
			continue
		}
		kept = append(kept, f)
	}
	if marked {
		ent.Message = term.Paint(e.color, ent.Message)
	}
	return e.Encoder.EncodeEntry(ent, kept)
}
