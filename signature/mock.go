/*
   Copyright imagegate authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/
package signature

import (
	"context"

	"github.com/rhels/imagegate/oci"
)

type MockVerifier struct {
	VerifyFunc func(ctx context.Context, ref oci.ImageReference) (Status, error)
}

func (m *MockVerifier) Verify(ctx context.Context, ref oci.ImageReference) (Status, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, ref)
	}
	return StatusUnavailable, nil
}
